package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2024-01-05",
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local),
			false,
		},
		{
			"Leap day",
			"2024-02-29",
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
			false,
		},
		{"Month out of range", "2024-13-40", time.Time{}, true},
		{"Day out of range", "2023-02-29", time.Time{}, true},
		{"Other layout", "05.01.2024", time.Time{}, true},
		{"Empty string", "", time.Time{}, true},
		{"Trailing garbage", "2024-01-05x", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestCompareDates(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			"Earlier day",
			time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 6, 1, 0, 0, 0, time.UTC),
			-1,
		},
		{
			"Same day different time",
			time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC),
			0,
		},
		{
			"Same civil date different zones",
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 5, 23, 0, 0, 0, tokyo),
			0,
		},
		{
			"Later year",
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareDates(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareDates(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOnOrBefore(t *testing.T) {
	limit := time.Date(2024, 2, 1, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Before", time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local), true},
		{"Same day", time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), true},
		{"After", time.Date(2024, 2, 2, 0, 0, 0, 0, time.Local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnOrBefore(tt.date, limit); got != tt.want {
				t.Errorf("OnOrBefore(%v, %v) = %v, want %v",
					tt.date.Format(DateLayout), limit.Format(DateLayout), got, tt.want)
			}
		})
	}
}
