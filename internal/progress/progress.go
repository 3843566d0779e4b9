// Package progress maps calendar dates onto internship day numbers and
// measures how far the program has advanced. Everything here is pure.
package progress

import (
	"math"
	"strconv"
	"time"
)

const (
	// TotalDays is the default program length in days
	TotalDays = 548

	// DateLayout is the storage and input format for calendar dates
	DateLayout = "2006-01-02"

	// LongLayout renders dates the way reports and exports show them
	LongLayout = "Monday, January 2, 2006"

	// NotStarted is shown instead of a day count before day one has passed
	NotStarted = "Not started"
)

const day = 24 * time.Hour

// Progress summarises elapsed and remaining days against the program length
type Progress struct {
	Completed int     `json:"completed"`
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"progressPercent"`
}

// ParseDate parses a YYYY-MM-DD string as UTC midnight
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders t's UTC calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Today returns the UTC calendar date of now as midnight.
// Progress is counted in whole calendar days, so the time of day is dropped.
func Today(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatLong renders a YYYY-MM-DD date as "Monday, January 1, 2024".
// Unparseable input is returned unchanged.
func FormatLong(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format(LongLayout)
}

// daysBetween is floor((to - from) / 24h)
func daysBetween(from, to time.Time) int {
	return int(math.Floor(float64(to.Sub(from)) / float64(day)))
}

// DayNumber returns the 1-based day of date relative to startDate.
// The start date itself is day 1. Dates before the start, a missing start
// date, and unparseable input all yield 0.
func DayNumber(date, startDate string) int {
	if startDate == "" {
		return 0
	}

	start, err := ParseDate(startDate)
	if err != nil {
		return 0
	}
	d, err := ParseDate(date)
	if err != nil {
		return 0
	}

	n := daysBetween(start, d) + 1
	if n > 0 {
		return n
	}
	return 0
}

// Compute measures today against startDate for a program of totalDays.
// A non-positive totalDays falls back to TotalDays.
func Compute(startDate, today time.Time, totalDays int) Progress {
	if totalDays <= 0 {
		totalDays = TotalDays
	}

	completed := max(daysBetween(startDate, today), 0)
	remaining := max(totalDays-completed, 0)
	percent := math.Min(float64(completed)/float64(totalDays), 1) * 100

	return Progress{
		Completed: completed,
		Remaining: remaining,
		Percent:   percent,
	}
}

// CurrentDayLabel is the completed day count, or NotStarted on day zero
func CurrentDayLabel(p Progress) string {
	if p.Completed > 0 {
		return strconv.Itoa(p.Completed)
	}
	return NotStarted
}

// RoundedPercent is the percentage rounded for display
func (p Progress) RoundedPercent() int {
	return int(math.Round(p.Percent))
}
