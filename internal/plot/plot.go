// Package plot buckets shifts by weekday and ISO week for the weekly
// distribution chart.
package plot

import (
	"sort"
	"time"

	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/timecalc"
)

// Days are the weekday labels, indexed Monday=0.
var Days = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Week is an ISO week present in the data.
type Week struct {
	Year   int
	Number int
}

// Bar is one shift placed on the chart. From and To are offsets from the
// midnight that starts the shift; To exceeds 24h for overnight shifts.
type Bar struct {
	Weekday int
	Week    Week
	Offset  int
	From    time.Duration
	To      time.Duration
}

// Distribution is the chart data for one month.
type Distribution struct {
	Bars  []Bar
	Weeks []Week
}

// Distribute places every shift by its begin weekday and ISO week. Offset is
// the position of the shift's week among the weeks present, oldest first.
func Distribute(shifts []model.Shift) Distribution {
	seen := map[Week]bool{}
	var weeks []Week
	for _, s := range shifts {
		w := weekOf(s.Begin)
		if !seen[w] {
			seen[w] = true
			weeks = append(weeks, w)
		}
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year < weeks[j].Year
		}
		return weeks[i].Number < weeks[j].Number
	})
	offset := make(map[Week]int, len(weeks))
	for i, w := range weeks {
		offset[w] = i
	}

	bars := make([]Bar, 0, len(shifts))
	for _, s := range shifts {
		w := weekOf(s.Begin)
		midnight := timecalc.StartOfDay(s.Begin)
		bars = append(bars, Bar{
			Weekday: timecalc.WeekdayIndex(s.Begin),
			Week:    w,
			Offset:  offset[w],
			From:    s.Begin.Sub(midnight),
			To:      s.End.Sub(midnight),
		})
	}
	return Distribution{Bars: bars, Weeks: weeks}
}

func weekOf(t time.Time) Week {
	y, n := t.ISOWeek()
	return Week{Year: y, Number: n}
}
