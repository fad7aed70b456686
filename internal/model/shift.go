package model

import "time"

// Shift is one resolved timesheet row. End is always after Begin; a shift
// that crosses midnight ends on the following calendar day.
type Shift struct {
	Date     time.Time     `json:"date"`
	Begin    time.Time     `json:"begin"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
	Notes    string        `json:"notes"`
}

// Month is the set of shifts loaded for one reporting period. Total is the
// summed duration rendered as "H:MM".
type Month struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	Shifts       []Shift    `json:"shifts"`
	Total        string     `json:"total"`
	TotalSeconds int64      `json:"total_seconds"`
}
