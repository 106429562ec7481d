// Package chart renders the text bar charts used by the charts page.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Bar is one labeled value of a chart.
type Bar struct {
	Label string
	Value float64
	Unit  string
}

// Options controls chart styling. Low and High are hex colors; each bar is
// tinted along the gradient by its share of the tallest bar.
type Options struct {
	Width      int
	Low        string
	High       string
	LabelStyle lipgloss.Style
	ValueStyle lipgloss.Style
	EmptyStyle lipgloss.Style
}

// Horizontal renders one line per bar, longest label aligned.
func Horizontal(bars []Bar, opts Options) string {
	if len(bars) == 0 {
		return ""
	}
	if opts.Width <= 0 {
		opts.Width = 24
	}

	maxVal := 0.0
	labelWidth := 0
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	low, lowErr := colorful.Hex(opts.Low)
	high, highErr := colorful.Hex(opts.High)
	gradient := lowErr == nil && highErr == nil

	var lines []string
	for _, b := range bars {
		frac := 0.0
		if maxVal > 0 {
			frac = b.Value / maxVal
		}
		filled := int(frac*float64(opts.Width) + 0.5)
		if b.Value > 0 && filled == 0 {
			filled = 1
		}

		barStyle := opts.ValueStyle
		if gradient {
			barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(low.BlendLuv(high, frac).Hex()))
		}

		bar := barStyle.Render(strings.Repeat("█", filled)) +
			opts.EmptyStyle.Render(strings.Repeat("░", opts.Width-filled))

		value := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", b.Value), "0"), ".")
		if b.Unit != "" {
			value += b.Unit
		}

		// Pad before styling so ANSI sequences do not skew the width.
		label := opts.LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, b.Label))
		lines = append(lines, fmt.Sprintf("%s %s %s", label, bar, opts.ValueStyle.Render(value)))
	}
	return strings.Join(lines, "\n")
}
