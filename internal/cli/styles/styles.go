package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/internlog/internal/config"
	"github.com/thenoetrevino/internlog/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Date:", "Day:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	// Progress bar
	BarFilledStyle lipgloss.Style
	BarEmptyStyle  lipgloss.Style
	BarWidth       = 40
)

func init() {
	Init(*config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)

	BarFilledStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent))

	BarEmptyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Field renders "Label: value" with the label and value styles
func Field(label string, value any) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(fmt.Sprint(value))
}

// ProgressBar renders a bar of width cells, filled to percent (0-100)
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = BarWidth
	}
	percent = max(0, min(100, percent))

	filled := int(percent / 100 * float64(width))
	return BarFilledStyle.Render(strings.Repeat("█", filled)) +
		BarEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// RenderTaskRow renders a task as "#id  date  Day n  text"
func RenderTaskRow(task *models.Task) string {
	day := "-"
	if task.DayNumber > 0 {
		day = fmt.Sprintf("Day %d", task.DayNumber)
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		SubtitleStyle.Render(fmt.Sprintf("#%d", task.ID)),
		LabelStyle.Render(task.Date),
		SubtitleStyle.Render(day),
		ValueStyle.Render(task.Text))
}
