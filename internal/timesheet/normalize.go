package timesheet

import (
	"fmt"
	"time"

	"github.com/Tiliavir/hourbill/internal/timecalc"
)

// Normalize anchors a begin/end clock pair on date. An end clock earlier than
// the begin clock is taken to be on the next day. The returned duration is
// always recomputed from the corrected timestamps.
func Normalize(date time.Time, beginClock, endClock string) (time.Time, time.Time, time.Duration, error) {
	beginOff, err := timecalc.ParseClock(beginClock)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: begin: %v", ErrMalformedRow, err)
	}
	endOff, err := timecalc.ParseClock(endClock)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: end: %v", ErrMalformedRow, err)
	}

	day := timecalc.StartOfDay(date)
	begin := day.Add(beginOff)
	end := day.Add(endOff)
	if beginOff > endOff {
		// Shift crosses midnight.
		end = day.AddDate(0, 0, 1).Add(endOff)
	}

	d := end.Sub(begin)
	if d <= 0 {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: shift %s-%s has no positive duration", ErrMalformedRow, beginClock, endClock)
	}
	return begin, end, d, nil
}
