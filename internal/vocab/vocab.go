// Package vocab defines the closed status and source vocabularies used by
// every layer that touches an application record. Free-form input is always
// funneled through NormalizeStatus / NormalizeSource, so downstream code can
// assume a record's status and source are members of these sets.
package vocab

import (
	"regexp"
	"strings"
)

type Status string

const (
	StatusWaiting      Status = "waiting"
	StatusScreening    Status = "screening"
	StatusMCU          Status = "mcu"
	StatusInterview    Status = "interview-user"
	StatusPsikotes     Status = "psikotes"
	StatusTesOnline    Status = "tes-online"
	StatusTraining     Status = "training"
	StatusTesKesehatan Status = "tes-kesehatan"
	StatusOffering     Status = "offering"
	StatusRejected     Status = "rejected"
	StatusHired        Status = "hired"
)

// Statuses lists every status in declaration order. Aggregation relies on this
// order for tie-breaking, so it must not be reordered.
var Statuses = []Status{
	StatusWaiting,
	StatusScreening,
	StatusMCU,
	StatusInterview,
	StatusPsikotes,
	StatusTesOnline,
	StatusTraining,
	StatusTesKesehatan,
	StatusOffering,
	StatusRejected,
	StatusHired,
}

type Source string

const (
	SourceLinkedin      Source = "linkedin"
	SourceEmail         Source = "email"
	SourceWebsite       Source = "website"
	SourceDisnaker      Source = "disnaker"
	SourceInstagram     Source = "instagram"
	SourceTemanKeluarga Source = "teman-keluarga"
	SourceLainnya       Source = "lainnya"
)

var Sources = []Source{
	SourceLinkedin,
	SourceEmail,
	SourceWebsite,
	SourceDisnaker,
	SourceInstagram,
	SourceTemanKeluarga,
	SourceLainnya,
}

var statusLabels = map[Status]string{
	StatusWaiting:      "Waiting",
	StatusScreening:    "Screening",
	StatusMCU:          "MCU",
	StatusInterview:    "Interview User",
	StatusPsikotes:     "Psikotes",
	StatusTesOnline:    "Tes Online",
	StatusTraining:     "Training",
	StatusTesKesehatan: "Tes Kesehatan",
	StatusOffering:     "Offering",
	StatusRejected:     "Rejected",
	StatusHired:        "Hired",
}

var sourceLabels = map[Source]string{
	SourceLinkedin:      "LinkedIn",
	SourceEmail:         "Email",
	SourceWebsite:       "Website",
	SourceDisnaker:      "Disnaker",
	SourceInstagram:     "Instagram",
	SourceTemanKeluarga: "Teman / Keluarga",
	SourceLainnya:       "Lainnya",
}

// StatusStyles maps each status to the badge style tag the dashboard renders
// with. Exhaustiveness over Statuses is asserted by a test.
var StatusStyles = map[Status]string{
	StatusWaiting:      "gray",
	StatusScreening:    "blue",
	StatusMCU:          "cyan",
	StatusInterview:    "indigo",
	StatusPsikotes:     "purple",
	StatusTesOnline:    "violet",
	StatusTraining:     "teal",
	StatusTesKesehatan: "sky",
	StatusOffering:     "amber",
	StatusRejected:     "red",
	StatusHired:        "green",
}

var SourceStyles = map[Source]string{
	SourceLinkedin:      "blue",
	SourceEmail:         "amber",
	SourceWebsite:       "teal",
	SourceDisnaker:      "indigo",
	SourceInstagram:     "pink",
	SourceTemanKeluarga: "green",
	SourceLainnya:       "gray",
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// slugify lower-cases the input and collapses whitespace runs into single
// hyphens, so "Interview User" and "interview  user" both become
// "interview-user".
func slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	return whitespaceRuns.ReplaceAllString(s, "-")
}

// NormalizeStatus maps arbitrary input to a member of the status vocabulary.
// Anything unrecognized, including the empty string, falls back to "waiting".
func NormalizeStatus(input string) Status {
	slug := Status(slugify(input))
	if _, ok := statusLabels[slug]; ok {
		return slug
	}
	return StatusWaiting
}

// NormalizeSource maps arbitrary input to a member of the source vocabulary,
// falling back to "lainnya".
func NormalizeSource(input string) Source {
	slug := Source(slugify(input))
	if _, ok := sourceLabels[slug]; ok {
		return slug
	}
	return SourceLainnya
}

// StatusLabel returns the display label for a status. Unknown values echo back
// as-is; normalization upstream should make that unreachable.
func StatusLabel(s Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// SourceLabel returns the display label for a source.
func SourceLabel(s Source) string {
	if label, ok := sourceLabels[s]; ok {
		return label
	}
	return string(s)
}
