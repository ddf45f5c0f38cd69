// Package ui renders styled terminal output for the CLI commands.
// Styling degrades to plain text when stdout is not a terminal.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

func colorEnabled() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}

// RenderPass styles a success marker.
func RenderPass(s string) string { return render(passStyle, s) }

// RenderWarn styles a warning marker.
func RenderWarn(s string) string { return render(warnStyle, s) }

// RenderFail styles a failure marker.
func RenderFail(s string) string { return render(failStyle, s) }

// RenderAccent styles an informational marker.
func RenderAccent(s string) string { return render(accentStyle, s) }

// RenderDim styles secondary detail text.
func RenderDim(s string) string { return render(dimStyle, s) }

// RenderTitle styles a section heading.
func RenderTitle(s string) string { return render(titleStyle, s) }

// Table renders a two-column metric table in the style the commands
// use for analysis and status output.
func Table(title string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")

	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	for _, row := range rows {
		// Pad before styling so ANSI codes don't skew the column width.
		label := fmt.Sprintf("%-*s", width, row[0])
		fmt.Fprintf(&b, "  %s  %s\n", RenderAccent(label), row[1])
	}
	return b.String()
}
