package main

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/overlay"
)

// Terminal cells are roughly 8x16 pixels; overlay sizes from the dashboard
// are expressed in pixels and scaled down with these.
const (
	pxPerCol = 10
	pxPerRow = 20
)

func cells(s overlay.Size) overlay.Size {
	return overlay.Size{Width: s.Width / pxPerCol, Height: s.Height / pxPerRow}
}

type windowKind int

const (
	winModal windowKind = iota
	winTicket
	winOrg
	winMember
	winWizard
	winItem
	winImport
)

// window is one draggable overlay on top of the current section.
type window struct {
	kind  windowKind
	modal modals.Kind // winModal only
	title string
	ov    *overlay.Overlay
	form  *form
	// mode distinguishes variants sharing a kind, e.g. give/drop/delete.
	mode string
	// ref is the entity the window edits, if any.
	ref string
}

func newWindow(kind windowKind, title string, pos overlay.Point, size, min overlay.Size) *window {
	return &window{kind: kind, title: title, ov: overlay.New(pos, size, min)}
}

// The element tree shared by all windows. The close button sits inside
// the header so a press on it never starts a drag.
var (
	elBody   = &overlay.Element{Kind: overlay.Body}
	elHeader = &overlay.Element{Kind: overlay.Header, Parent: elBody}
	elClose  = &overlay.Element{Kind: overlay.Button, Parent: elHeader}
	elResize = &overlay.Element{Kind: overlay.ResizeHandle, Parent: elBody}
)

// hitTest maps a screen cell to the element of w under it, or nil.
func hitTest(w *window, p overlay.Point) *overlay.Element {
	if !w.ov.Contains(p) {
		return nil
	}
	local := p.Sub(w.ov.Position)
	width, height := w.ov.Size.Width, w.ov.Size.Height
	switch {
	case local.Y == 0 && local.X >= width-5 && local.X <= width-3:
		return elClose
	case local.Y == 0:
		return elHeader
	case local.Y == height-1 && local.X >= width-2:
		return elResize
	}
	return elBody
}

// frame draws body inside w's box. The header carries the title and a
// close button; the bottom-right corner is the resize handle.
func frame(w *window, body string, focused bool) string {
	width, height := w.ov.Size.Width, w.ov.Size.Height
	if width < 8 {
		width = 8
	}
	if height < 3 {
		height = 3
	}
	inner := width - 2

	edge := borderStyle
	if focused {
		edge = focusStyle
	}
	title := " " + w.title + " "
	top := edge.Render("╭") + ansi.Truncate(titleStyle.Render(title)+edge.Render(strings.Repeat("─", inner)), inner-4, "") +
		dangerStyle.Render("[x]") + edge.Render("─╮")

	lines := strings.Split(body, "\n")
	out := make([]string, 0, height)
	out = append(out, top)
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out = append(out, edge.Render("│")+fit(line, inner)+edge.Render("│"))
	}
	out = append(out, edge.Render("╰"+strings.Repeat("─", inner-1))+focusStyle.Render("◢")+edge.Render("╯"))
	return strings.Join(out, "\n")
}

// place draws fg over bg with its top-left corner at (x, y). Cells of bg
// outside fg are preserved, ANSI styling included.
func place(bg, fg string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}
	for i, fl := range fgLines {
		row := bgLines[y+i]
		fw := ansi.StringWidth(fl)
		left := ansi.Truncate(row, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ""
		if ansi.StringWidth(row) > x+fw {
			right = ansi.TruncateLeft(row, x+fw, "")
		}
		bgLines[y+i] = left + "\x1b[0m" + fl + "\x1b[0m" + right
	}
	return strings.Join(bgLines, "\n")
}

// center returns the top-left corner that centers a w×h box in the screen.
func center(screenW, screenH, w, h int) overlay.Point {
	x, y := (screenW-w)/2, (screenH-h)/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlay.Point{X: x, Y: y}
}
