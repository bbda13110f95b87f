// Package export turns a record set into a downloadable CSV or XLSX file.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jobtrackr/jobtrackr/internal/models"
	"github.com/jobtrackr/jobtrackr/internal/vocab"
)

// ErrNothingToExport signals an empty record set; callers surface it as a
// user-facing notice rather than producing an empty file.
var ErrNothingToExport = errors.New("nothing to export")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	filenameBase = "jobtrackr-applications"
	sheetName    = "Applications"
)

// header is the fixed column order for both formats.
var header = []string{"Company", "Position", "Applied At", "Status", "Source", "Notes"}

// ParseFormat validates a format query parameter. An absent value defaults
// to CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f Format) Filename() string {
	return filenameBase + "." + string(f)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Serialize renders the record set in the requested format. Status and source
// are exported as display labels. Free text is handled by the format's own
// quoting, so notes containing commas or newlines survive a round trip.
func Serialize(records []models.Application, format Format) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}
	switch format {
	case FormatCSV:
		return serializeCSV(records)
	case FormatXLSX:
		return serializeXLSX(records)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func row(r models.Application) []string {
	return []string{
		r.Company,
		r.Position,
		r.AppliedAt.String(),
		vocab.StatusLabel(r.Status),
		vocab.SourceLabel(r.Source),
		r.Notes,
	}
}

func serializeCSV(records []models.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write(row(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func serializeXLSX(records []models.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		cols := row(r)
		values := make([]any, len(cols))
		for j, v := range cols {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
