package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/puyokura/nuiadmin/dashboard"
	"github.com/puyokura/nuiadmin/i18n"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	prefs := i18n.NewPreferences(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, prefs.Load())
	a := newApp(Options{Offline: true, Operator: "tester"}, NewNetwork(), prefs)
	a.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return a
}

func press(a *app, msgs ...tea.KeyMsg) {
	for _, m := range msgs {
		a.Update(m)
	}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestBanFromPlayersSection(t *testing.T) {
	a := newTestApp(t)
	press(a, tab, keys("b"))

	require.Len(t, a.windows, 1)
	w := a.windows[0]
	assert.Equal(t, winModal, w.kind)
	assert.Equal(t, modals.Ban, w.modal)
	assert.True(t, a.env.Modals.IsOpen(modals.Ban))

	press(a, enter)

	assert.Empty(t, a.windows)
	assert.False(t, a.env.Modals.IsOpen(modals.Ban))
	assert.Equal(t, 1, a.env.Ledger.Len())
	msg, ok := a.env.Dialogs.CurrentAlert()
	require.True(t, ok)
	assert.Equal(t, "Baneado permanentemente: Jugador1 (Dev Mode)", msg)

	// The alert swallows keys until dismissed.
	press(a, keys("b"))
	assert.Empty(t, a.windows)
	press(a, enter, keys("b"))
	assert.Len(t, a.windows, 1)
}

func TestTemporaryBanWithoutDaysKeepsWindow(t *testing.T) {
	a := newTestApp(t)
	press(a, tab, keys("b"), tea.KeyMsg{Type: tea.KeyRight}, enter)

	require.Len(t, a.windows, 1)
	assert.True(t, a.env.Modals.IsOpen(modals.Ban))
	assert.Zero(t, a.env.Ledger.Len())
	_, ok := a.env.Dialogs.CurrentAlert()
	assert.True(t, ok)
}

func TestEscClosesModalWindow(t *testing.T) {
	a := newTestApp(t)
	press(a, tab, keys("m"))
	require.Len(t, a.windows, 1)
	press(a, esc)
	assert.Empty(t, a.windows)
	assert.False(t, a.env.Modals.IsOpen(modals.Message))
}

func TestDragAndCloseWithMouse(t *testing.T) {
	a := newTestApp(t)
	press(a, tab, keys("s"))
	require.Len(t, a.windows, 1)
	w := a.windows[0]
	start := w.ov.Position

	a.Update(tea.MouseMsg{X: start.X + 2, Y: start.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	a.Update(tea.MouseMsg{X: start.X + 7, Y: start.Y + 3, Action: tea.MouseActionMotion})
	a.Update(tea.MouseMsg{X: start.X + 7, Y: start.Y + 3, Action: tea.MouseActionRelease})
	assert.Equal(t, start.X+5, w.ov.Position.X)
	assert.Equal(t, start.Y+3, w.ov.Position.Y)

	p := w.ov.Position
	a.Update(tea.MouseMsg{X: p.X + w.ov.Size.Width - 4, Y: p.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Empty(t, a.windows)
	assert.False(t, a.env.Modals.IsOpen(modals.Suspend))
}

func TestMinimizeAndRestore(t *testing.T) {
	a := newTestApp(t)
	press(a, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.False(t, a.env.Modals.DashboardVisible())
	assert.NotEmpty(t, a.View())

	press(a, enter)
	assert.True(t, a.iconMenu)
	press(a, enter)
	assert.True(t, a.env.Modals.DashboardVisible())
}

func TestCloseDashboardQuits(t *testing.T) {
	a := newTestApp(t)
	press(a, tea.KeyMsg{Type: tea.KeyCtrlN}, enter, tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := a.Update(enter)
	assert.True(t, a.env.Modals.DashboardClosed())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewRendersEverySection(t *testing.T) {
	a := newTestApp(t)
	for range sections {
		assert.NotEmpty(t, a.View())
		press(a, tab)
	}
	assert.Equal(t, secCommand, a.section)
}

func TestChatFromCommandCenter(t *testing.T) {
	a := newTestApp(t)
	before := len(a.chat.Messages())
	press(a, keys("hola"), enter)
	msgs := a.chat.Messages()
	require.Len(t, msgs, before+1)
	assert.Equal(t, "tester", msgs[len(msgs)-1].Author)
	assert.Equal(t, "hola", msgs[len(msgs)-1].Text)
}

func TestOpenTicketAndReply(t *testing.T) {
	a := newTestApp(t)
	a.section = secTickets
	first := a.tickets.Visible()[0]
	n := len(first.Messages)

	press(a, enter)
	require.Len(t, a.windows, 1)
	assert.Equal(t, winTicket, a.windows[0].kind)
	assert.Equal(t, first.ID, a.windows[0].ref)

	press(a, keys("en ello"), enter)
	tk, _ := a.tickets.Get(first.ID)
	require.Len(t, tk.Messages, n+1)
	assert.Equal(t, "en ello", tk.Messages[n].Message)
	assert.Len(t, a.windows, 1, "ticket window stays open")
}

func TestLanguageToggle(t *testing.T) {
	a := newTestApp(t)
	before := a.lang
	press(a, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.NotEqual(t, before, a.lang)
	assert.Equal(t, a.lang, a.prefs.Lang())
}

func TestMissionWizardThumbnailDialogueAndVehicle(t *testing.T) {
	a := newTestApp(t)
	a.section = secMissions
	press(a, keys("n"))
	require.Len(t, a.windows, 1)
	w := a.windows[0]
	require.Equal(t, winWizard, w.kind)
	pgdown := tea.KeyMsg{Type: tea.KeyPgDown}

	dir := t.TempDir()
	text := filepath.Join(dir, "notes.txt")
	png := filepath.Join(dir, "thumb.png")
	require.NoError(t, os.WriteFile(text, []byte("no soy una imagen"), 0o644))
	require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o644))

	press(a, keys("heist"), tab, keys("Golpe"))
	w.form.fields[5].input.SetValue(text)
	press(a, pgdown)
	assert.Equal(t, dashboard.StepBasic, a.wizard.Step(), "rejected thumbnail keeps the step")
	msg, ok := a.env.Dialogs.CurrentAlert()
	require.True(t, ok)
	assert.Equal(t, "El archivo debe ser una imagen", msg)
	press(a, enter)

	w.form.fields[5].input.SetValue(png)
	press(a, pgdown)
	require.Equal(t, dashboard.StepNPCs, a.wizard.Step())
	assert.Contains(t, a.wizard.Draft.Thumbnail, "data:image/png;base64,")
	assert.Equal(t, "Golpe", a.wizard.Draft.Label)

	press(a, keys("Guardia"))
	w.form.fields[4].input.SetValue("Alto ahí | Me voy | Soy amigo")
	press(a, enter)
	require.Len(t, a.wizard.Draft.NPCs, 1)
	require.Len(t, a.wizard.Draft.NPCs[0].Dialogue, 1)
	node := a.wizard.Draft.NPCs[0].Dialogue[0]
	assert.Equal(t, "Alto ahí", node.Text)
	assert.Len(t, node.Options, 2)

	press(a, pgdown, tab, tab, tab, tab, tea.KeyMsg{Type: tea.KeyRight}, enter)
	require.Equal(t, dashboard.StepProps, a.wizard.Step())
	assert.Empty(t, a.wizard.Draft.Props)
	require.Len(t, a.wizard.Draft.Vehicles, 1)
	assert.Equal(t, "adder", a.wizard.Draft.Vehicles[0].Model)
	assert.False(t, a.wizard.Draft.Vehicles[0].Locked)
}
