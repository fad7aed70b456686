// Package timesheet loads monthly timesheet exports and turns them into
// resolved shifts with a month total.
package timesheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Tiliavir/hourbill/internal/locale"
	"github.com/Tiliavir/hourbill/internal/model"
	"github.com/Tiliavir/hourbill/internal/timecalc"
)

var (
	// ErrInputNotFound is returned when no export exists for the requested month.
	ErrInputNotFound = errors.New("timesheet export not found")
	// ErrMalformedRow is returned for rows that cannot be turned into a shift.
	ErrMalformedRow = errors.New("malformed timesheet row")
)

// Export columns, in file order. Hours and pause are recomputed or unused.
const (
	colDate = iota
	colBegin
	colEnd
	colHours
	colPause
	colNotes
	numColumns
)

// Row is one raw export line.
type Row struct {
	Date  string
	Begin string
	End   string
	Notes string
}

// Load reads the export at path for the given month.
func Load(path string, year int, month time.Month) (model.Month, locale.Locale, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return model.Month{}, 0, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return model.Month{}, 0, fmt.Errorf("opening timesheet %s: %w", path, err)
	}
	defer f.Close()

	m, loc, err := Read(f, year, month)
	if err != nil {
		return model.Month{}, 0, fmt.Errorf("%s: %w", path, err)
	}
	return m, loc, nil
}

// Read parses an export. The first header cell selects the locale and the
// last line, the export's own monthly total, is discarded.
func Read(r io.Reader, year int, month time.Month) (model.Month, locale.Locale, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return model.Month{}, 0, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	if len(records) == 0 {
		return model.Month{}, 0, fmt.Errorf("%w: missing header", ErrMalformedRow)
	}
	header := records[0]
	if len(header) != numColumns {
		return model.Month{}, 0, fmt.Errorf("%w: header has %d columns, want %d", ErrMalformedRow, len(header), numColumns)
	}
	if len(records) < 2 {
		return model.Month{}, 0, fmt.Errorf("%w: missing total row", ErrMalformedRow)
	}
	loc := locale.Detect(header[colDate])

	body := records[1 : len(records)-1]
	shifts := make([]model.Shift, 0, len(body))
	for i, rec := range body {
		line := i + 2
		if len(rec) != numColumns {
			return model.Month{}, 0, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformedRow, line, len(rec), numColumns)
		}
		row := Row{
			Date:  rec[colDate],
			Begin: rec[colBegin],
			End:   rec[colEnd],
			Notes: rec[colNotes],
		}
		s, err := ResolveRow(loc, row, year, month)
		if err != nil {
			return model.Month{}, 0, fmt.Errorf("line %d: %w", line, err)
		}
		shifts = append(shifts, s)
	}

	secs := TotalSeconds(shifts)
	return model.Month{
		Year:         year,
		Month:        month,
		Shifts:       shifts,
		Total:        timecalc.FormatTotal(secs),
		TotalSeconds: secs,
	}, loc, nil
}

// ResolveRow converts a raw row into a shift using the file's locale.
func ResolveRow(loc locale.Locale, row Row, year int, month time.Month) (model.Shift, error) {
	date, err := locale.ParseDate(loc, row.Date, month, year)
	if err != nil {
		if errors.Is(err, locale.ErrLookupFailure) {
			return model.Shift{}, err
		}
		return model.Shift{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	begin, end, d, err := Normalize(date, row.Begin, row.End)
	if err != nil {
		return model.Shift{}, err
	}
	return model.Shift{
		Date:     date,
		Begin:    begin,
		End:      end,
		Duration: d,
		Notes:    strings.TrimSpace(row.Notes),
	}, nil
}

// TotalSeconds sums the whole-second durations of shifts.
func TotalSeconds(shifts []model.Shift) int64 {
	var total int64
	for _, s := range shifts {
		total += int64(s.Duration / time.Second)
	}
	return total
}
