package render

import (
	"fmt"
	"io"
	"time"

	"github.com/Tiliavir/hourbill/internal/plot"
)

// palette is the ten-colour qualitative cycle used for week offsets.
var palette = [][3]int{
	{31, 119, 180}, {255, 127, 14}, {44, 160, 44}, {214, 39, 40}, {148, 103, 189},
	{140, 86, 75}, {227, 119, 194}, {127, 127, 127}, {188, 189, 34}, {23, 190, 207},
}

func weekColor(offset int) [3]int {
	return palette[offset%len(palette)]
}

// Chart area on a landscape A4 page, in mm.
const (
	chartLeft   = 25.0
	chartTop    = 35.0
	chartWidth  = 255.0
	chartHeight = 150.0
	barHalf     = 0.48
)

// Weekly writes the weekly distribution chart to w. Days run left to right
// from Monday, the time of day top to bottom from midnight.
func Weekly(w io.Writer, dist plot.Distribution) error {
	d := newDocument("L")
	pdf := d.pdf

	d.font("", 18)
	pdf.SetXY(chartLeft, 12)
	d.cell(chartWidth, 10, "Workweek", false, 1, "C", false)

	colWidth := chartWidth / float64(len(plot.Days))
	yOf := func(t time.Duration) float64 {
		if t > 24*time.Hour {
			t = 24 * time.Hour
		}
		return chartTop + chartHeight*t.Hours()/24
	}

	// Hour grid and labels.
	d.font("", 8)
	pdf.SetDrawColor(160, 160, 160)
	pdf.SetLineWidth(0.1)
	pdf.SetDashPattern([]float64{1, 1}, 0)
	for h := 0; h <= 24; h++ {
		y := yOf(time.Duration(h) * time.Hour)
		pdf.Line(chartLeft, y, chartLeft+chartWidth, y)
		pdf.SetXY(chartLeft-14, y-2)
		d.cell(12, 4, fmt.Sprintf("%02d:00", h%24), false, 0, "R", false)
	}
	pdf.SetDashPattern([]float64{}, 0)

	// Bars.
	pdf.SetAlpha(0.8, "Normal")
	for _, b := range dist.Bars {
		c := weekColor(b.Offset)
		pdf.SetFillColor(c[0], c[1], c[2])
		center := chartLeft + colWidth*(float64(b.Weekday)+0.5)
		top, bottom := yOf(b.From), yOf(b.To)
		pdf.Rect(center-colWidth*barHalf, top, colWidth*2*barHalf, bottom-top, "F")
	}
	pdf.SetAlpha(1, "Normal")

	// Frame and weekday labels.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Rect(chartLeft, chartTop, chartWidth, chartHeight, "D")
	d.font("", 12)
	for i, day := range plot.Days {
		pdf.SetXY(chartLeft+colWidth*float64(i), chartTop+chartHeight+2)
		d.cell(colWidth, 6, day, false, 0, "C", false)
	}

	// Legend.
	d.font("", 10)
	pdf.SetTextColor(255, 255, 255)
	for i, wk := range dist.Weeks {
		c := weekColor(i)
		pdf.SetFillColor(c[0], c[1], c[2])
		pdf.SetXY(chartLeft+float64(i)*22, 24)
		d.cell(20, 6, fmt.Sprintf("Week %d", wk.Number), false, 0, "C", true)
	}
	pdf.SetTextColor(0, 0, 0)

	return d.output(w)
}
