// Package stats derives the dashboard aggregates from a record set. Everything
// here is a pure function of its input; the record sets are small (one
// person's applications), so full recomputation on every change beats keeping
// incremental counters in sync.
package stats

import (
	"math"

	"github.com/jobtrackr/jobtrackr/internal/models"
	"github.com/jobtrackr/jobtrackr/internal/vocab"
)

// Summary is the aggregate view served to the dashboard.
type Summary struct {
	Total         int                  `json:"total"`
	ByStatus      map[vocab.Status]int `json:"by_status"`
	BySource      map[vocab.Source]int `json:"by_source"`
	LeadingStatus vocab.Status         `json:"leading_status,omitempty"`
	HiredProgress int                  `json:"hired_progress"`
}

// CountsByStatus returns a count for every vocabulary status, zeros included.
func CountsByStatus(records []models.Application) map[vocab.Status]int {
	counts := make(map[vocab.Status]int, len(vocab.Statuses))
	for _, s := range vocab.Statuses {
		counts[s] = 0
	}
	for _, r := range records {
		counts[vocab.NormalizeStatus(string(r.Status))]++
	}
	return counts
}

// CountsBySource returns a count for every vocabulary source, zeros included.
func CountsBySource(records []models.Application) map[vocab.Source]int {
	counts := make(map[vocab.Source]int, len(vocab.Sources))
	for _, s := range vocab.Sources {
		counts[s] = 0
	}
	for _, r := range records {
		counts[vocab.NormalizeSource(string(r.Source))]++
	}
	return counts
}

// LeadingStatus returns the status with the highest non-zero count. Ties go to
// the status declared first in the vocabulary; the empty string means every
// count is zero.
func LeadingStatus(counts map[vocab.Status]int) vocab.Status {
	var leading vocab.Status
	best := 0
	for _, s := range vocab.Statuses {
		if counts[s] > best {
			best = counts[s]
			leading = s
		}
	}
	return leading
}

// HiredProgress is the hired share of all applications as a rounded
// percentage, clamped to [0, 100]. A zero total yields 0.
func HiredProgress(total, hired int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(hired) / float64(total)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Summarize computes the full aggregate view in one pass over the helpers.
func Summarize(records []models.Application) Summary {
	byStatus := CountsByStatus(records)
	return Summary{
		Total:         len(records),
		ByStatus:      byStatus,
		BySource:      CountsBySource(records),
		LeadingStatus: LeadingStatus(byStatus),
		HiredProgress: HiredProgress(len(records), byStatus[vocab.StatusHired]),
	}
}
