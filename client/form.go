package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field is one row of a form: free text, or a fixed set of choices cycled
// with left/right.
type field struct {
	label   string
	input   textinput.Model
	options []string
	choice  int
}

func textField(label, placeholder string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 30
	ti.Prompt = ""
	return field{label: label, input: ti}
}

func choiceField(label string, options ...string) field {
	return field{label: label, input: textinput.New(), options: options}
}

func (f field) withValue(v string) field {
	if f.options == nil {
		f.input.SetValue(v)
		return f
	}
	for i, o := range f.options {
		if o == v {
			f.choice = i
		}
	}
	return f
}

func (f field) value() string {
	if f.options != nil {
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.choice]
	}
	return f.input.Value()
}

// form is a vertical list of fields with a single focused row.
type form struct {
	fields []field
	focus  int
}

func newForm(fields ...field) *form {
	f := &form{fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	i = (i + len(f.fields)) % len(f.fields)
	for n := range f.fields {
		f.fields[n].input.Blur()
	}
	f.focus = i
	if f.fields[i].options == nil {
		f.fields[i].input.Focus()
	}
}

func (f *form) value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].value()
}

// values maps labels to values.
func (f *form) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		out[fl.label] = fl.value()
	}
	return out
}

func (f *form) reset() {
	for n := range f.fields {
		f.fields[n].input.SetValue("")
		f.fields[n].choice = 0
	}
	f.setFocus(0)
}

// Update moves focus and edits the focused field. Enter is left to the
// caller.
func (f *form) Update(msg tea.KeyMsg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		f.setFocus(f.focus + 1)
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.setFocus(f.focus - 1)
		return nil
	}

	cur := &f.fields[f.focus]
	if cur.options != nil {
		switch msg.Type {
		case tea.KeyLeft:
			cur.choice = (cur.choice - 1 + len(cur.options)) % len(cur.options)
		case tea.KeyRight, tea.KeySpace:
			cur.choice = (cur.choice + 1) % len(cur.options)
		}
		return nil
	}
	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	return cmd
}

func (f *form) View(width int) string {
	labelW := 0
	for _, fl := range f.fields {
		if w := lipgloss.Width(fl.label); w > labelW {
			labelW = w
		}
	}
	var b strings.Builder
	for n, fl := range f.fields {
		label := fl.label + strings.Repeat(" ", labelW-lipgloss.Width(fl.label))
		style := labelStyle
		if n == f.focus {
			style = focusStyle
		}
		val := fl.input.View()
		if fl.options != nil {
			val = "‹ " + fl.value() + " ›"
		}
		b.WriteString(style.Render(label) + "  " + val)
		if n < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
