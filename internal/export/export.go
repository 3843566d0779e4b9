// Package export turns a day-ordered task list into the downloadable CSV and
// JSON report formats.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/internlog/internal/models"
	"github.com/thenoetrevino/internlog/internal/progress"
)

// Format names an export encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for anything other than csv or json
var ErrUnknownFormat = errors.New("unknown export format (use csv or json)")

// csvHeader is the first line of every CSV export
const csvHeader = "Day Number,Date,Task"

// exportDateLayout matches a JavaScript ISO timestamp: UTC with milliseconds
const exportDateLayout = "2006-01-02T15:04:05.000Z"

// ParseFormat validates a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Document is the JSON export payload
type Document struct {
	ExportDate string  `json:"exportDate"`
	TotalTasks int     `json:"totalTasks"`
	Tasks      []Entry `json:"tasks"`
}

// Entry is one task in a JSON export
type Entry struct {
	DayNumber     int    `json:"dayNumber"`
	Date          string `json:"date"`
	FormattedDate string `json:"formattedDate"`
	Task          string `json:"task"`
}

// quote wraps s in double quotes, doubling any quote inside it
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ToCSV renders tasks in the given order. The day number is bare; the long
// date and the task text are always quoted. There is no trailing newline.
func ToCSV(tasks []*models.Task) string {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, csvHeader)

	for _, t := range tasks {
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(t.DayNumber),
			quote(progress.FormatLong(t.Date)),
			quote(t.Text),
		}, ","))
	}

	return strings.Join(lines, "\n")
}

// ToJSON builds the JSON document for tasks, keeping their order
func ToJSON(tasks []*models.Task, now time.Time) Document {
	entries := make([]Entry, 0, len(tasks))
	for _, t := range tasks {
		entries = append(entries, Entry{
			DayNumber:     t.DayNumber,
			Date:          t.Date,
			FormattedDate: progress.FormatLong(t.Date),
			Task:          t.Text,
		})
	}

	return Document{
		ExportDate: now.UTC().Format(exportDateLayout),
		TotalTasks: len(entries),
		Tasks:      entries,
	}
}

// Marshal encodes the document with two-space indentation.
// HTML characters are written as-is.
func (d Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Render encodes tasks in format
func Render(format Format, tasks []*models.Task, now time.Time) ([]byte, error) {
	switch format {
	case FormatCSV:
		return []byte(ToCSV(tasks)), nil
	case FormatJSON:
		return ToJSON(tasks, now).Marshal()
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// FileName is the default download name, e.g. internship_report_2024-01-31.csv
func FileName(format Format, now time.Time) string {
	return fmt.Sprintf("internship_report_%s.%s", progress.FormatDate(now), format)
}
