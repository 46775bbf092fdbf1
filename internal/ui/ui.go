// Package ui holds the terminal palette and table helpers used by the ringviz CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kesava936/money-muling-detection/internal/models"
)

var (
	Brand  = color.New(color.FgHiRed, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)

	Critical = color.New(color.FgRed, color.Bold)
)

const Dot = "●"

// Banner prints the ringviz banner.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s %s · %s\n\n", Brand.Sprint(Dot), Brand.Sprint("ringviz"), subtitle)
}

// Table prints a simple aligned table. Cells may carry color escapes; widths
// are measured on the visible text.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && visibleLen(cell) > widths[i] {
				widths[i] = visibleLen(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += pad(h, widths[i])
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Fprintln(w, strings.TrimRight(headerLine, " "))
	Subtle.Fprintln(w, strings.TrimRight(sepLine, " "))

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += pad(cell, widths[i])
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func pad(cell string, width int) string {
	return cell + strings.Repeat(" ", width-visibleLen(cell)+2)
}

func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			n++
		}
	}
	return n
}

// Swatch returns a dot in the given #rrggbb color.
func Swatch(hex string) string {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Dot
	}
	return color.RGB(r, g, b).Sprint(Dot)
}

// Risk colors a risk level label.
func Risk(level string) string {
	switch level {
	case models.RiskCritical:
		return Critical.Sprint(level)
	case models.RiskHigh:
		return Bad.Sprint(level)
	case models.RiskModerate:
		return Warn.Sprint(level)
	default:
		return Good.Sprint(level)
	}
}
