package styles

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/internlog/internal/config"
	"github.com/thenoetrevino/internlog/internal/models"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		wantFilled int
	}{
		{"empty", 0, 0},
		{"half", 50, 10},
		{"full", 100, 20},
		{"clamped above", 140, 20},
		{"clamped below", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.percent, 20)
			assert.Equal(t, 20, lipgloss.Width(bar))
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
		})
	}
}

func TestProgressBar_DefaultWidth(t *testing.T) {
	assert.Equal(t, BarWidth, lipgloss.Width(ProgressBar(10, 0)))
}

func TestRenderTaskRow(t *testing.T) {
	row := RenderTaskRow(&models.Task{ID: 4, Date: "2024-01-02", Text: "Review PR", DayNumber: 2})
	assert.Contains(t, row, "#4")
	assert.Contains(t, row, "2024-01-02")
	assert.Contains(t, row, "Day 2")
	assert.Contains(t, row, "Review PR")

	early := RenderTaskRow(&models.Task{ID: 5, Date: "2023-12-31", Text: "Before start"})
	assert.NotContains(t, early, "Day 0")
}

func TestInit_Monochrome(t *testing.T) {
	defer Init(*config.DefaultColorScheme())

	Init(*config.MonochromeColorScheme())
	assert.Contains(t, Field("Total", 3), "Total:")
	assert.Contains(t, Field("Total", 3), "3")
}
