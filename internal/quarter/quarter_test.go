package quarter

import (
	"testing"
	"time"
)

func TestFromMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		want  Quarter
	}{
		{time.January, Q1},
		{time.February, Q1},
		{time.March, Q1},
		{time.April, Q2},
		{time.May, Q2},
		{time.June, Q2},
		{time.July, Q3},
		{time.August, Q3},
		{time.September, Q3},
		{time.October, Q4},
		{time.November, Q4},
		{time.December, Q4},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			if got := FromMonth(tt.month); got != tt.want {
				t.Errorf("FromMonth(%v) = %v, want %v", tt.month, got, tt.want)
			}
		})
	}
}

func TestFromMonth_Partition(t *testing.T) {
	groups := make(map[Quarter][]time.Month)
	for m := time.January; m <= time.December; m++ {
		q := FromMonth(m)
		groups[q] = append(groups[q], m)
	}

	if len(groups) != 4 {
		t.Fatalf("got %d quarters, want 4", len(groups))
	}

	for _, q := range All {
		months := groups[q]
		if len(months) != 3 {
			t.Errorf("%v has %d months, want 3", q, len(months))
			continue
		}
		for i := 1; i < len(months); i++ {
			if months[i] != months[i-1]+1 {
				t.Errorf("%v months not consecutive: %v", q, months)
			}
		}
	}
}

func TestFromMonth_InvalidPanics(t *testing.T) {
	for _, m := range []time.Month{0, 13} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FromMonth(%d) did not panic", m)
				}
			}()
			FromMonth(m)
		}()
	}
}

func TestOf(t *testing.T) {
	date := time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local)
	if got := Of(date); got != Q1 {
		t.Errorf("Of(%v) = %v, want Q1", date, got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		label  string
		want   Quarter
		wantOK bool
	}{
		{"q1", Q1, true},
		{"q2", Q2, true},
		{"q3", Q3, true},
		{"q4", Q4, true},
		{"Q3", Q3, true},
		{"q5", 0, false},
		{"q0", 0, false},
		{"", 0, false},
		{"quarter1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Parse(tt.label)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tt.label, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLabelAndString(t *testing.T) {
	for i, q := range All {
		if q.Label() != []string{"q1", "q2", "q3", "q4"}[i] {
			t.Errorf("Label() = %q", q.Label())
		}
		if q.String() != []string{"Q1", "Q2", "Q3", "Q4"}[i] {
			t.Errorf("String() = %q", q.String())
		}
		parsed, ok := Parse(q.Label())
		if !ok || parsed != q {
			t.Errorf("Parse(%q) = (%v, %v), want %v", q.Label(), parsed, ok, q)
		}
	}
}
