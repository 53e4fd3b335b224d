package config

import (
	"time"

	"github.com/officedays/officedays/internal/quarter"
)

// Schedule holds the dates configured for each quarter of one section
// (bank holidays, leave or office days). A missing quarter has no dates.
type Schedule map[quarter.Quarter][]time.Time

// Dates returns the dates configured for the quarter
func (s Schedule) Dates(q quarter.Quarter) []time.Time {
	return s[q]
}

// Lookup returns the dates for a quarter label such as "q2".
// Labels outside q1..q4 yield no dates.
func (s Schedule) Lookup(label string) []time.Time {
	q, ok := quarter.Parse(label)
	if !ok {
		return nil
	}
	return s.Dates(q)
}

// Count returns the number of dates configured for the quarter
func (s Schedule) Count(q quarter.Quarter) int {
	return len(s[q])
}
