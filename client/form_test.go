package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestFormTypingAndFocus(t *testing.T) {
	f := newForm(textField("Días", "7"), textField("Razón", ""))
	f.Update(keys("3"))
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(keys("spam"))

	assert.Equal(t, "3", f.value(0))
	assert.Equal(t, "spam", f.value(1))
	assert.Equal(t, map[string]string{"Días": "3", "Razón": "spam"}, f.values())

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, f.focus, "focus wraps")
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, f.focus)
}

func TestFormChoices(t *testing.T) {
	f := newForm(choiceField("Tipo", "permanent", "temporary", "other"))
	assert.Equal(t, "permanent", f.value(0))
	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "temporary", f.value(0))
	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "other", f.value(0))
}

func TestFormWithValueAndReset(t *testing.T) {
	f := newForm(
		choiceField("Estado", "all", "online", "offline").withValue("offline"),
		textField("Nivel", "").withValue("42"),
	)
	assert.Equal(t, "offline", f.value(0))
	assert.Equal(t, "42", f.value(1))
	assert.Equal(t, "", f.value(7))

	f.setFocus(1)
	f.reset()
	assert.Equal(t, "all", f.value(0))
	assert.Equal(t, "", f.value(1))
	assert.Equal(t, 0, f.focus)
}

func TestFormFocusAcrossChoiceAndText(t *testing.T) {
	f := newForm(
		choiceField("Tipo", "permanent", "temporary"),
		textField("Días", ""),
	)
	require.False(t, f.fields[0].input.Focused())

	f.Update(tab)
	assert.Equal(t, 1, f.focus)
	assert.True(t, f.fields[1].input.Focused())

	f.Update(tab)
	assert.Equal(t, 0, f.focus)
	assert.False(t, f.fields[1].input.Focused())
	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "temporary", f.value(0))
}
