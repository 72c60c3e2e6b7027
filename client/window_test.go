package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/puyokura/nuiadmin/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellsScalesPixels(t *testing.T) {
	assert.Equal(t, overlay.Size{Width: 66, Height: 31}, cells(overlay.InventoryMin))
}

func TestPlaceKeepsBackground(t *testing.T) {
	bg := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	out := place(bg, "XY", 3, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "aaaaaaaaaa", lines[0])
	assert.Equal(t, "bbbXYbbbbb", ansi.Strip(lines[1]))
	assert.Equal(t, "cccccccccc", lines[2])
}

func TestPlacePadsShortRows(t *testing.T) {
	out := place("ab", "Z", 4, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "    Z", ansi.Strip(lines[2]))
}

func TestFrameFillsOverlay(t *testing.T) {
	w := newWindow(winModal, "Ban · Jugador1", overlay.Point{}, overlay.Size{Width: 40, Height: 10}, dialogMin)
	out := frame(w, "hola\nmundo", true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	for i, l := range lines {
		assert.Equal(t, 40, ansi.StringWidth(l), "line %d", i)
	}
	assert.Contains(t, ansi.Strip(lines[0]), "[x]")
	assert.Contains(t, ansi.Strip(lines[1]), "hola")
}

func TestHitTest(t *testing.T) {
	w := newWindow(winModal, "x", overlay.Point{X: 10, Y: 5}, overlay.Size{Width: 40, Height: 10}, dialogMin)

	assert.Same(t, elClose, hitTest(w, overlay.Point{X: 46, Y: 5}))
	assert.Same(t, elHeader, hitTest(w, overlay.Point{X: 12, Y: 5}))
	assert.Same(t, elResize, hitTest(w, overlay.Point{X: 49, Y: 14}))
	assert.Same(t, elBody, hitTest(w, overlay.Point{X: 20, Y: 8}))
	assert.Nil(t, hitTest(w, overlay.Point{X: 5, Y: 5}))
	assert.Nil(t, hitTest(w, overlay.Point{X: 50, Y: 5}))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, overlay.Point{X: 55, Y: 19}, center(160, 50, 50, 12))
	assert.Equal(t, overlay.Point{}, center(20, 5, 50, 12))
}
