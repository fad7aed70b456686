package render

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/timecalc"
)

// ReportInput is everything shown on an hour report.
type ReportInput struct {
	Month     model.Month
	Company   model.Company
	Payee     model.Payee
	Generated time.Time
}

type reportRow struct {
	Date   string
	Begin  string
	End    string
	Hours  string
	Notes  string
	Height float64
}

// reportRows formats shifts for the report table, most recent first.
func reportRows(shifts []model.Shift) []reportRow {
	rows := make([]reportRow, 0, len(shifts))
	for i := len(shifts) - 1; i >= 0; i-- {
		s := shifts[i]
		h := 5.0
		if utf8.RuneCountInString(s.Notes) > 70 {
			h = 10
		}
		rows = append(rows, reportRow{
			Date:   truncate(s.Date.Format("02 January"), 7),
			Begin:  s.Begin.Format("15:04"),
			End:    s.End.Format("15:04"),
			Hours:  timecalc.FormatClock(s.Duration),
			Notes:  s.Notes,
			Height: h,
		})
	}
	return rows
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// wholeHoursLabel turns "37:30" into "37:00".
func wholeHoursLabel(total string) string {
	h, err := timecalc.WholeHours(total)
	if err != nil {
		return total
	}
	return fmt.Sprintf("%d:00", h)
}

// HourReport writes the hour report PDF for one month to w.
func HourReport(w io.Writer, in ReportInput) error {
	d := newDocument("P")
	pdf := d.pdf
	pdf.SetXY(0, 0)

	start, end := timecalc.MonthRange(in.Month.Year, in.Month.Month)

	// Header
	d.font("B", 22)
	d.cell(1, 15, "", false, 1, "", false)
	d.cell(190, 10, "Hour report", false, 1, "C", false)
	d.rule()
	d.cell(10, 5, "", false, 2, "C", false)

	d.font("B", 13)
	d.cell(40, 5, "Company name: ", false, 0, "L", false)
	d.font("", 13)
	d.cell(15, 5, in.Company.Name, false, 1, "L", false)

	d.font("B", 13)
	d.cell(18, 5, "Month: ", false, 0, "L", false)
	d.font("", 13)
	d.cell(15, 5, start.Format("January"), false, 1, "L", false)

	d.font("", 12)
	d.cell(190, 5, in.Payee.Name, false, 1, "R", false)
	d.cell(190, 5, in.Payee.Position, false, 1, "R", false)
	d.cell(190, 5, in.Payee.Email, false, 1, "R", false)
	d.cell(10, 20, "", false, 1, "C", false)

	for _, line := range [][2]string{
		{"From: ", start.Format("02 January, 2006")},
		{"To: ", end.Format("02 January, 2006")},
		{"Date of report:", in.Generated.Format("02 January, 2006")},
	} {
		d.font("B", 13)
		d.cell(140, 5, line[0], false, 0, "R", false)
		d.font("", 12)
		d.cell(50, 5, line[1], false, 1, "R", false)
	}

	d.cell(5, 10, "", false, 1, "C", false)
	d.cell(10, 0, "", false, 0, "", false)
	d.font("", 15)
	d.cell(10, 5, fmt.Sprintf("Weeks: #%d - %d", timecalc.ISOWeek(start), timecalc.ISOWeek(end)), false, 1, "L", false)
	d.cell(1, 5, "", false, 1, "", false)

	// Table
	const (
		indent    = 5.0
		dateWidth = 20.0
		hourWidth = 15.0
		taskWidth = 120.0
	)
	d.font("B", 14)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(0, 0, 0)
	d.cell(indent, 6, "", false, 0, "", false)
	d.cell(dateWidth, 6, "Date", true, 0, "C", true)
	d.cell(hourWidth, 6, "Begin", true, 0, "C", true)
	d.cell(hourWidth, 6, "End", true, 0, "C", true)
	d.cell(hourWidth, 6, "Hours", true, 0, "C", true)
	d.cell(taskWidth, 6, "Task", true, 1, "C", true)
	pdf.SetTextColor(0, 0, 0)

	d.font("", 11)
	pdf.SetFillColor(220, 220, 220)
	for i, r := range reportRows(in.Month.Shifts) {
		fill := i%2 == 1
		d.cell(indent, r.Height, "", false, 0, "", false)
		d.cell(dateWidth, r.Height, r.Date, false, 0, "C", fill)
		d.cell(hourWidth, r.Height, r.Begin, false, 0, "C", fill)
		d.cell(hourWidth, r.Height, r.End, false, 0, "C", fill)
		d.cell(hourWidth, r.Height, r.Hours, false, 0, "C", fill)
		d.multiCell(taskWidth, 5, r.Notes, "L", fill)
	}

	d.font("B", 13)
	d.cell(indent, 10, "", false, 0, "", false)
	d.cell(50, 10, "Total time:", false, 0, "R", false)
	d.font("", 11)
	d.cell(hourWidth, 10, in.Month.Total, false, 1, "", false)
	d.cell(20, 20, "", false, 1, "", false)

	d.font("B", 13)
	d.cell(160, 5, "Worked hours:", false, 0, "R", false)
	d.font("", 12)
	d.cell(30, 5, wholeHoursLabel(in.Month.Total), false, 1, "R", false)
	d.cell(20, 30, "", false, 1, "", false)
	d.rule()

	return d.output(w)
}
