package config

// ColorScheme defines the colors of styled command output
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `mapstructure:"preset" yaml:"preset"`

	// Primary accent color (used for borders, labels, the progress bar)
	Accent string `mapstructure:"accent" yaml:"accent"`

	// Text colors
	Title  string `mapstructure:"title" yaml:"title"`
	Subtle string `mapstructure:"subtle" yaml:"subtle"` // Muted text and empty bar
	Normal string `mapstructure:"normal" yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `mapstructure:"info_fg" yaml:"info_fg"`
	InfoBg    string `mapstructure:"info_bg" yaml:"info_bg"`
	WarningFg string `mapstructure:"warning_fg" yaml:"warning_fg"`
	WarningBg string `mapstructure:"warning_bg" yaml:"warning_bg"`
	ErrorFg   string `mapstructure:"error_fg" yaml:"error_fg"`
	ErrorBg   string `mapstructure:"error_bg" yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Accent: "#874BFD",
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#5F87D7",
		WarningFg: "#000000",
		WarningBg: "#FFAF00",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#D70000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return MonochromeColorScheme()
	default:
		return DefaultColorScheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}
