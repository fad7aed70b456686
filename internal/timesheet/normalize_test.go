package timesheet_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/hourbill/internal/timecalc"
	"github.com/Tiliavir/hourbill/internal/timesheet"
)

func TestNormalize(t *testing.T) {
	date := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		begin     string
		end       string
		wantEnd   time.Time
		wantDur   time.Duration
		wantClock string
	}{
		{"day shift", "09:00", "17:30", time.Date(2022, 6, 1, 17, 30, 0, 0, time.UTC), 8*time.Hour + 30*time.Minute, "08:30"},
		{"overnight", "22:00", "02:00", time.Date(2022, 6, 2, 2, 0, 0, 0, time.UTC), 4 * time.Hour, "04:00"},
		{"ends at midnight", "18:00", "00:00", time.Date(2022, 6, 2, 0, 0, 0, 0, time.UTC), 6 * time.Hour, "06:00"},
		{"one minute", "12:00", "12:01", time.Date(2022, 6, 1, 12, 1, 0, 0, time.UTC), time.Minute, "00:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			begin, end, d, err := timesheet.Normalize(date, tt.begin, tt.end)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if !timecalc.SameDay(begin, date) {
				t.Errorf("begin = %v, want on %v", begin, date)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
			if d != tt.wantDur {
				t.Errorf("duration = %v, want %v", d, tt.wantDur)
			}
			if d != end.Sub(begin) || d <= 0 {
				t.Errorf("duration %v is not end-begin (%v)", d, end.Sub(begin))
			}
			if got := timecalc.FormatClock(d); got != tt.wantClock {
				t.Errorf("clock = %q, want %q", got, tt.wantClock)
			}
		})
	}
}

func TestNormalizeEndDate(t *testing.T) {
	date := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	clocks := []string{"00:00", "06:15", "09:00", "12:30", "17:45", "23:59"}

	for _, b := range clocks {
		for _, e := range clocks {
			if b == e {
				continue
			}
			begin, end, _, err := timesheet.Normalize(date, b, e)
			if err != nil {
				t.Fatalf("Normalize(%s, %s): %v", b, e, err)
			}
			if b < e && !timecalc.SameDay(begin, end) {
				t.Errorf("Normalize(%s, %s): end %v not on begin day", b, e, end)
			}
			if b > e && !timecalc.SameDay(begin.AddDate(0, 0, 1), end) {
				t.Errorf("Normalize(%s, %s): end %v not on the following day", b, e, end)
			}
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	date := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		begin string
		end   string
	}{
		{"9h", "17:00"},
		{"09:00", ""},
		{"25:00", "17:00"},
		{"09:00", "09:00"},
	}
	for _, tt := range tests {
		_, _, _, err := timesheet.Normalize(date, tt.begin, tt.end)
		if !errors.Is(err, timesheet.ErrMalformedRow) {
			t.Errorf("Normalize(%q, %q) error = %v, want ErrMalformedRow", tt.begin, tt.end, err)
		}
	}
}
