package main

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0", money(0))
	assert.Equal(t, "$999", money(999))
	assert.Equal(t, "$125,000", money(125000))
	assert.Equal(t, "$1,234,567", money(1234567))
	assert.Equal(t, "-$4,500", money(-4500))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", fit("ab", 5))
	assert.Equal(t, 4, ansi.StringWidth(fit("abcdefgh", 4)))
	assert.Equal(t, "", fit("abc", 0))
}

func TestParseColorTags(t *testing.T) {
	assert.Equal(t, "plain", parseColorTags("plain"))
	assert.Equal(t, "Sanar rápido", ansi.Strip(parseColorTags("Sanar <#22c55e>rápido</>")))
	assert.Equal(t, "a <#ff0000>b", ansi.Strip(parseColorTags("a <#ff0000>b")))
}

func TestFormatEntry(t *testing.T) {
	e := model.ActivityEntry{
		Timestamp:   time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC),
		SubjectName: "Jugador1",
		Action:      "Baneado permanentemente",
		Icon:        "🔨",
	}
	line := formatEntry(e, 80)
	assert.Equal(t, 80, ansi.StringWidth(line))
	plain := ansi.Strip(line)
	assert.Contains(t, plain, "09:26")
	assert.Contains(t, plain, "Jugador1")
	assert.Contains(t, plain, "Baneado permanentemente")
}
