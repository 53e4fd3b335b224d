// Package attendance derives quarterly office-attendance figures from a
// year's configuration. All functions are pure; "today" is always passed in.
package attendance

import (
	"time"

	"github.com/officedays/officedays/internal/config"
	"github.com/officedays/officedays/internal/quarter"
	"github.com/officedays/officedays/pkg/dateutil"
)

// Summary holds the figures reported for one quarter
type Summary struct {
	Quarter    quarter.Quarter
	Required   int // configured days per quarter
	Adjustment int // days excused by bank holidays and leave
	Total      int // days required after adjustment
	Worked     int // office days up to and including today
	Scheduled  int // all office days listed for the quarter
	Remaining  int // Total - Worked, negative when ahead
	Projected  int // Total - Scheduled, positive when the plan falls short
}

// DaysRequired returns the quarter's requirement after subtracting bank
// holidays and leave, never below zero.
func DaysRequired(cfg *config.Config, q quarter.Quarter) int {
	daysOff := cfg.BankHolidays.Count(q) + cfg.Leave.Count(q)
	return max(0, cfg.RequiredQuarterlyAttendance-daysOff)
}

// DaysWorked counts the quarter's office days on or before asOf.
// A nil asOf counts every office day listed for the quarter.
func DaysWorked(cfg *config.Config, q quarter.Quarter, asOf *time.Time) int {
	dates := cfg.OfficeDays.Dates(q)
	if asOf == nil {
		return len(dates)
	}

	count := 0
	for _, d := range dates {
		if dateutil.OnOrBefore(d, *asOf) {
			count++
		}
	}
	return count
}

// Summarize computes the report figures for the quarter containing today
func Summarize(cfg *config.Config, today time.Time) Summary {
	q := quarter.Of(today)

	total := DaysRequired(cfg, q)
	worked := DaysWorked(cfg, q, &today)
	scheduled := DaysWorked(cfg, q, nil)

	return Summary{
		Quarter:    q,
		Required:   cfg.RequiredQuarterlyAttendance,
		Adjustment: cfg.RequiredQuarterlyAttendance - total,
		Total:      total,
		Worked:     worked,
		Scheduled:  scheduled,
		Remaining:  total - worked,
		Projected:  total - scheduled,
	}
}

// Behind reports whether more office days are still needed as of today
func (s Summary) Behind() bool {
	return s.Remaining > 0
}

// ProjectedShort reports whether the scheduled days will not cover the requirement
func (s Summary) ProjectedShort() bool {
	return s.Projected > 0
}
