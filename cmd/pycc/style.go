package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette
var (
	colorError   = lipgloss.Color("#EF4444") // Red
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

// styles renders diagnostics for one output stream.
type styles struct {
	pos     lipgloss.Style
	syntax  lipgloss.Style
	sem     lipgloss.Style
	summary lipgloss.Style
}

// newStyles returns styles for w. Color is auto, always or never.
func newStyles(w io.Writer, color string) *styles {
	r := lipgloss.NewRenderer(w)
	switch color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}
	return &styles{
		pos:     r.NewStyle().Foreground(colorMuted),
		syntax:  r.NewStyle().Foreground(colorError).Bold(true),
		sem:     r.NewStyle().Foreground(colorWarning).Bold(true),
		summary: r.NewStyle().Foreground(colorError),
	}
}

// diag writes one diagnostic line: "pos: kind: msg".
func (s *styles) diag(w io.Writer, kind lipgloss.Style, label, pos, msg string) {
	fmt.Fprintf(w, "%s: %s %s\n", s.pos.Render(pos), kind.Render(label+":"), msg)
}

// count formats n with a singular or plural noun.
func count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
