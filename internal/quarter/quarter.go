package quarter

import (
	"fmt"
	"strings"
	"time"
)

// Quarter is one of the four fixed calendar quarters
type Quarter int

const (
	Q1 Quarter = iota + 1 // January - March
	Q2                    // April - June
	Q3                    // July - September
	Q4                    // October - December
)

// All lists the quarters in calendar order
var All = []Quarter{Q1, Q2, Q3, Q4}

// FromMonth maps a month to its quarter.
// A month outside 1..12 means the caller's calendar arithmetic is broken,
// so it panics instead of returning an error.
func FromMonth(month time.Month) Quarter {
	switch {
	case month >= time.January && month <= time.March:
		return Q1
	case month >= time.April && month <= time.June:
		return Q2
	case month >= time.July && month <= time.September:
		return Q3
	case month >= time.October && month <= time.December:
		return Q4
	default:
		panic(fmt.Sprintf("quarter: invalid month %d", month))
	}
}

// Of returns the quarter containing the given date
func Of(date time.Time) Quarter {
	return FromMonth(date.Month())
}

// Parse converts a label such as "q1" into a Quarter
func Parse(label string) (Quarter, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "q1":
		return Q1, true
	case "q2":
		return Q2, true
	case "q3":
		return Q3, true
	case "q4":
		return Q4, true
	}
	return 0, false
}

// Label returns the configuration key for the quarter ("q1".."q4")
func (q Quarter) Label() string {
	return strings.ToLower(q.String())
}

// String returns the display name ("Q1".."Q4")
func (q Quarter) String() string {
	if q < Q1 || q > Q4 {
		return fmt.Sprintf("Quarter(%d)", int(q))
	}
	return fmt.Sprintf("Q%d", int(q))
}
