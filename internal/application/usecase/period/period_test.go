package period

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "regular month",
			year:      2024,
			month:     time.March,
			wantStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "leap february",
			year:      2024,
			month:     time.February,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "december wraps the year",
			year:      2023,
			month:     time.December,
			wantStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 12, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.year, tt.month)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestDayRange(t *testing.T) {
	in := time.Date(2024, 1, 15, 13, 45, 12, 0, time.UTC)
	start, end := DayRange(in)

	if !start.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 1, 15, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("end = %v", end)
	}
	if end.Before(start) {
		t.Error("end before start")
	}
}

func TestValidYearMonth(t *testing.T) {
	tests := []struct {
		year, month int
		want        bool
	}{
		{2024, 1, true},
		{2024, 12, true},
		{2024, 0, false},
		{2024, 13, false},
		{1969, 6, false},
		{10000, 6, false},
	}

	for _, tt := range tests {
		if got := ValidYearMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("ValidYearMonth(%d, %d) = %v, want %v", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Errorf("DaysInMonth(2024, Feb) = %d, want 29", got)
	}
	if got := DaysInMonth(2023, time.February); got != 28 {
		t.Errorf("DaysInMonth(2023, Feb) = %d, want 28", got)
	}
	if got := DaysInMonth(2024, time.April); got != 30 {
		t.Errorf("DaysInMonth(2024, Apr) = %d, want 30", got)
	}
}
