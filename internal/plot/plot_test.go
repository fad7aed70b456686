package plot_test

import (
	"testing"
	"time"

	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/plot"
)

func shift(begin time.Time, d time.Duration) model.Shift {
	return model.Shift{Date: begin, Begin: begin, End: begin.Add(d), Duration: d}
}

func TestDistribute(t *testing.T) {
	shifts := []model.Shift{
		// Wednesday 2022-06-01, ISO week 22.
		shift(time.Date(2022, 6, 1, 9, 0, 0, 0, time.UTC), 8*time.Hour),
		// Sunday 2022-06-05, still week 22.
		shift(time.Date(2022, 6, 5, 22, 0, 0, 0, time.UTC), 4*time.Hour),
		// Monday 2022-06-06, week 23.
		shift(time.Date(2022, 6, 6, 8, 30, 0, 0, time.UTC), 30*time.Minute),
	}

	dist := plot.Distribute(shifts)

	if len(dist.Weeks) != 2 {
		t.Fatalf("weeks = %v, want 2 weeks", dist.Weeks)
	}
	if dist.Weeks[0].Number != 22 || dist.Weeks[1].Number != 23 {
		t.Errorf("weeks = %v, want 22 and 23", dist.Weeks)
	}

	want := []struct {
		weekday int
		week    int
		offset  int
		from    time.Duration
		to      time.Duration
	}{
		{2, 22, 0, 9 * time.Hour, 17 * time.Hour},
		{6, 22, 0, 22 * time.Hour, 26 * time.Hour},
		{0, 23, 1, 8*time.Hour + 30*time.Minute, 9 * time.Hour},
	}
	for i, w := range want {
		b := dist.Bars[i]
		if b.Weekday != w.weekday || b.Week.Number != w.week || b.Offset != w.offset {
			t.Errorf("bar %d = weekday %d week %d offset %d, want %d %d %d",
				i, b.Weekday, b.Week.Number, b.Offset, w.weekday, w.week, w.offset)
		}
		if b.From != w.from || b.To != w.to {
			t.Errorf("bar %d span = %v-%v, want %v-%v", i, b.From, b.To, w.from, w.to)
		}
	}
	if plot.Days[dist.Bars[2].Weekday] != "Monday" {
		t.Errorf("label = %q, want Monday", plot.Days[dist.Bars[2].Weekday])
	}
}

func TestDistributeYearBoundary(t *testing.T) {
	shifts := []model.Shift{
		// Saturday 2022-01-01 belongs to ISO week 52 of 2021.
		shift(time.Date(2022, 1, 1, 10, 0, 0, 0, time.UTC), time.Hour),
		shift(time.Date(2022, 1, 3, 10, 0, 0, 0, time.UTC), time.Hour),
	}

	dist := plot.Distribute(shifts)

	if len(dist.Weeks) != 2 || dist.Weeks[0] != (plot.Week{Year: 2021, Number: 52}) {
		t.Fatalf("weeks = %v", dist.Weeks)
	}
	if dist.Bars[0].Offset != 0 || dist.Bars[1].Offset != 1 {
		t.Errorf("offsets = %d, %d, want 0, 1", dist.Bars[0].Offset, dist.Bars[1].Offset)
	}
}

func TestDistributeEmpty(t *testing.T) {
	dist := plot.Distribute(nil)
	if len(dist.Bars) != 0 || len(dist.Weeks) != 0 {
		t.Errorf("expected empty distribution, got %+v", dist)
	}
}
