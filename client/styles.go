package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/puyokura/nuiadmin/model"
)

var (
	accent      = lipgloss.Color("#f97316")
	borderColor = lipgloss.Color("#505050")
	dimColor    = lipgloss.Color("#737373")

	borderStyle  = lipgloss.NewStyle().Foreground(borderColor)
	titleStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(dimColor)
	focusStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	selectStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#262626")).Foreground(lipgloss.Color("#fafafa"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	helpStyle    = lipgloss.NewStyle().Foreground(dimColor)
	sidebarStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(borderColor)
)

func colored(hex, s string) string {
	if hex == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

// fit pads or cuts s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}

// formatEntry renders one ledger line:
// │ Time  │ Subject         │ Action
func formatEntry(e model.ActivityEntry, width int) string {
	if width < 40 {
		width = 40
	}
	vLine := borderStyle.Render("│")

	subject := e.SubjectName
	if subject == "" {
		subject = "—"
	}
	prefix := fmt.Sprintf("%s %s %s %s %s ",
		vLine, e.Timestamp.Format("15:04"),
		vLine, fit(subject, 15),
		vLine)

	msgWidth := width - ansi.StringWidth(prefix)
	if msgWidth < 10 {
		msgWidth = 10
	}
	action := colored(e.Color, e.Icon+" "+e.Action)
	return prefix + fit(action, msgWidth)
}

// parseColorTags renders "<#RRGGBB>text</>" spans with their colour. Host
// pushed labels may carry them.
func parseColorTags(input string) string {
	var out strings.Builder
	remaining := input

	for {
		start := strings.Index(remaining, "<#")
		if start == -1 {
			out.WriteString(remaining)
			break
		}
		out.WriteString(remaining[:start])
		remaining = remaining[start:]

		endTagStart := strings.Index(remaining, ">")
		if endTagStart == -1 {
			out.WriteString(remaining)
			break
		}
		colorCode := remaining[1:endTagStart]
		remaining = remaining[endTagStart+1:]

		endTag := strings.Index(remaining, "</>")
		if endTag == -1 {
			// Malformed, just print rest
			out.WriteString("<" + colorCode + ">" + remaining)
			break
		}
		out.WriteString(colored(colorCode, remaining[:endTag]))
		remaining = remaining[endTag+3:]
	}
	return out.String()
}

func money(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
