// Package theme centralizes Lip Gloss styles for the Bubble Tea UI. Two
// palettes ship built in; the selected name is persisted by the caller.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"
)

// Names of the built-in themes.
const (
	Dark  = "dark"
	Light = "light"
)

// Theme groups the styles used across the UI pages.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Status   lipgloss.Style
	Toast    lipgloss.Style

	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style

	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style

	Modal ModalTheme

	Calendar CalendarTheme

	ChartLow  string
	ChartHigh string
}

// ModalTheme styles centered modal overlays (confirm, alert, forms).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// CalendarTheme styles the month grid cells.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// ForName returns the named theme, falling back to dark.
func ForName(name string) Theme {
	if name == Light {
		return LightTheme()
	}
	return DarkTheme()
}

// Detect picks a theme from the terminal background when no name was
// persisted yet.
func Detect() Theme {
	if termenv.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// Toggle returns the other built-in theme.
func Toggle(t Theme) Theme {
	if t.Name == Dark {
		return LightTheme()
	}
	return DarkTheme()
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	return Theme{
		Name: Dark,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("114")).Padding(0, 1),

		MenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),

		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),

		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},

		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Entry:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},

		ChartLow:  "#5f87ff",
		ChartHigh: "#5fff87",
	}
}

// LightTheme is the alternate palette for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Name: Light,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("90")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		Toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28")).Padding(0, 1),

		MenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		MenuSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("90")),

		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},

		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Entry:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("90")).Foreground(lipgloss.Color("15")),
		},

		ChartLow:  "#005faf",
		ChartHigh: "#008700",
	}
}
