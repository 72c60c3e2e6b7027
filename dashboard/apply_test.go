package dashboard

import (
	"errors"
	"testing"

	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommitsInOrder(t *testing.T) {
	env := newTestEnv(t)
	env.Modals.Open(modals.Ban, "P-0001", "Jugador1")

	var steps []string
	applied := false
	call := bridge.NewCall("player:ban", "P-0001", -1, "x")
	env.Modals.OnChange(func(k modals.Kind, s modals.State) {
		if k == modals.Ban && !s.IsOpen {
			steps = append(steps, "close")
		}
	})

	err := env.Run(Mutation{
		Apply: func() {
			applied = true
			assert.Empty(t, env.host.Calls(), "apply runs before emit")
			steps = append(steps, "apply")
		},
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivityBan, Action: "Baneado permanentemente"},
		Close:  []modals.Kind{modals.Ban},
	})
	require.NoError(t, err)

	assert.True(t, applied)
	assert.Equal(t, []string{"apply", "close"}, steps)
	assert.Equal(t, []string{"player:ban"}, env.host.Events())
	require.Equal(t, 1, env.Ledger.Len())
	assert.False(t, env.Modals.IsOpen(modals.Ban))
}

func TestRunValidationFailureDoesNothing(t *testing.T) {
	env := newTestEnv(t)
	call := bridge.NewCall("broadcast:send", "")
	applied := false

	err := env.Run(Mutation{
		Validate: func() error { return Required("message", "  ", "Por favor escribe un mensaje") },
		Apply:    func() { applied = true },
		Emit:     &call,
		Record:   &model.ActivityEntry{Type: model.ActivityBroadcast},
	})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.False(t, applied)
	assert.Empty(t, env.host.Calls())
	assert.Zero(t, env.Ledger.Len())
	assert.Equal(t, []string{"Por favor escribe un mensaje"}, env.Dialogs.Alerts())
}

func TestRunParksBehindConfirmation(t *testing.T) {
	env := newTestEnv(t)
	call := bridge.NewCall("action:execute", "player:kill", "P-0001")
	extra := false

	err := env.Run(Mutation{
		Confirm: &Confirmation{Title: "¿Matar?", Dangerous: true, OnConfirm: func() { extra = true }},
		Emit:    &call,
		Record:  &model.ActivityEntry{Type: model.ActivityKill},
	})
	require.True(t, errors.Is(err, ErrAwaitingConfirmation))
	assert.Empty(t, env.host.Calls())
	assert.True(t, env.Dialogs.Blocking())

	pending, ok := env.Dialogs.Pending()
	require.True(t, ok)
	assert.True(t, pending.Dangerous)

	require.True(t, env.Dialogs.Confirm())
	assert.Equal(t, []string{"action:execute"}, env.host.Events())
	assert.Equal(t, 1, env.Ledger.Len())
	assert.True(t, extra, "caller's OnConfirm still runs")
	assert.False(t, env.Dialogs.Blocking())
}

func TestRunCancelledConfirmationSendsNothing(t *testing.T) {
	env := newTestEnv(t)
	call := bridge.NewCall("inventory:clearInventory")
	cancelled := false

	err := env.Run(Mutation{
		Confirm: &Confirmation{Title: "Borrar", OnCancel: func() { cancelled = true }},
		Emit:    &call,
	})
	require.ErrorIs(t, err, ErrAwaitingConfirmation)
	require.True(t, env.Dialogs.Cancel())

	assert.True(t, cancelled)
	assert.Empty(t, env.host.Calls())
	assert.Zero(t, env.Ledger.Len())
	assert.False(t, env.Dialogs.Cancel(), "nothing left to cancel")
}

func TestDialogsQueueInOrder(t *testing.T) {
	d := &Dialogs{}
	d.Alert("uno")
	d.Alert("dos")

	a, ok := d.CurrentAlert()
	require.True(t, ok)
	assert.Equal(t, "uno", a)
	d.DismissAlert()
	a, _ = d.CurrentAlert()
	assert.Equal(t, "dos", a)
	d.DismissAlert()
	d.DismissAlert()
	assert.False(t, d.Blocking())
}

func TestIsDangerous(t *testing.T) {
	for id, want := range map[string]bool{
		"player:kill":        true,
		"kill":               true,
		"player:freeze":      true,
		"player:electrocute": true,
		"player:burn":        true,
		"player:slap":        true,
		"player:heal":        false,
		"player:bring":       false,
		"":                   false,
	} {
		assert.Equal(t, want, IsDangerous(id), id)
	}
}

func TestStatusNeedsConfirmation(t *testing.T) {
	gated, dangerous := StatusNeedsConfirmation(model.TicketClosed)
	assert.True(t, gated)
	assert.True(t, dangerous)

	gated, dangerous = StatusNeedsConfirmation(model.TicketResolved)
	assert.True(t, gated)
	assert.False(t, dangerous)

	gated, _ = StatusNeedsConfirmation(model.TicketInProgress)
	assert.False(t, gated)
}

func TestQuerySkippedWithoutHost(t *testing.T) {
	host := &bridge.Recorder{Offline: true}
	env := envAround(bridge.NewGateway(host, nil))

	env.Query(bridge.NewCall(model.EvTicketsGet))
	assert.Empty(t, host.Calls())
	assert.Empty(t, env.Dialogs.Alerts())

	host.Offline = false
	env.Query(bridge.NewCall(model.EvTicketsGet))
	assert.Equal(t, []string{model.EvTicketsGet}, host.Events())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hola", truncate("hola", 50))
	assert.Equal(t, "añ...", truncate("añadir", 2))
}
