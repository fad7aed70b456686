// Package locale resolves the localized date text found in timesheet exports.
//
// Each export dialect writes dates as "<weekday> <month> ... <day>" using its
// own month abbreviations. The dialect is chosen once per file from the first
// header cell and passed to every row conversion.
package locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrLookupFailure is returned when a month abbreviation is not part of the
// active locale's table.
var ErrLookupFailure = errors.New("month abbreviation not recognized")

// Locale identifies a timesheet export dialect.
type Locale int

const (
	English Locale = iota
	German
	Spanish
)

// Header sentinels found in the first column of each dialect's export.
const (
	EnglishHeader = "Date"
	GermanHeader  = "Datum"
	SpanishHeader = "Fecha"
)

var months = map[Locale]map[string]time.Month{
	English: {
		"Jan": time.January, "Feb": time.February, "Mar": time.March,
		"Apr": time.April, "May": time.May, "Jun": time.June,
		"Jul": time.July, "Aug": time.August, "Sep": time.September,
		"Oct": time.October, "Nov": time.November, "Dec": time.December,
	},
	German: {
		"Jan": time.January, "Feb": time.February, "Mär": time.March,
		"Apr": time.April, "Mai": time.May, "Jun": time.June,
		"Jul": time.July, "Aug": time.August, "Sept": time.September,
		"Okt": time.October, "Nov": time.November, "Dez": time.December,
	},
	Spanish: {
		"ene.": time.January, "feb.": time.February, "mar.": time.March,
		"abr.": time.April, "may.": time.May, "jun": time.June,
		"jul": time.July, "ago.": time.August, "sep.": time.September,
		"oct.": time.October, "nov.": time.November, "dic.": time.December,
	},
}

// String returns the dialect name.
func (l Locale) String() string {
	switch l {
	case German:
		return "German"
	case Spanish:
		return "Spanish"
	default:
		return "English"
	}
}

// Detect picks the locale from the first header cell of an export. The cell
// must match exactly once a leading byte-order mark is removed; anything else
// falls back to English.
func Detect(header string) Locale {
	switch strings.TrimPrefix(header, "\ufeff") {
	case GermanHeader:
		return German
	case SpanishHeader:
		return Spanish
	default:
		return English
	}
}

// ResolveMonth maps a month abbreviation to its month number.
func ResolveMonth(l Locale, abbr string) (time.Month, error) {
	m, ok := months[l][norm.NFC.String(abbr)]
	if !ok {
		return 0, fmt.Errorf("%w: %q in %s table", ErrLookupFailure, abbr, l)
	}
	return m, nil
}

// ParseDate converts the date column of an export row into a calendar date.
// The year is not part of the date text and is supplied by the caller, as is
// the reporting month, which the German dialect needs to locate its month
// token.
func ParseDate(l Locale, text string, month time.Month, year int) (time.Time, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return time.Time{}, fmt.Errorf("invalid date text %q: want <weekday> <month> <day>", text)
	}

	token := fields[1]
	if l == German && month != time.May {
		// German exports abbreviate with a trailing dot ("Jun.", "Sept."),
		// except in May, which is written out in full as "Mai".
		_, size := utf8.DecodeLastRuneInString(token)
		token = token[:len(token)-size]
	}

	m, err := ResolveMonth(l, token)
	if err != nil {
		return time.Time{}, err
	}

	day, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in date text %q: %w", text, err)
	}

	date := time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
	if date.Month() != m || date.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date text %q: day %d out of range", text, day)
	}
	return date, nil
}
