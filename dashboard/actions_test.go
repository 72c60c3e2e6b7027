package dashboard

import (
	"testing"

	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDangerousActionWaitsForConfirmation(t *testing.T) {
	env := newTestEnv(t)
	a := NewActions(env.Env)
	env.Modals.Open(modals.Actions, "P-0001", "Jugador1")

	err := a.Trigger("player:kill")
	require.ErrorIs(t, err, ErrAwaitingConfirmation)
	assert.Empty(t, env.host.Calls(), "nothing reaches the host before confirmation")
	assert.True(t, env.Modals.IsOpen(modals.Actions))

	c, ok := env.Dialogs.Pending()
	require.True(t, ok)
	assert.True(t, c.Dangerous)
	assert.Contains(t, c.Title, "Jugador1")

	env.Dialogs.Confirm()
	calls := env.host.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, model.EvActionExecute, calls[0].Event)
	assert.Equal(t, []any{"player:kill", "P-0001"}, calls[0].Args)
	assert.Equal(t, model.ActivityKill, env.Ledger.Entries()[0].Type)
	assert.False(t, env.Modals.IsOpen(modals.Actions))
}

func TestDangerousActionCancelled(t *testing.T) {
	env := newTestEnv(t)
	a := NewActions(env.Env)
	env.Modals.Open(modals.Actions, "P-0001", "Jugador1")

	_ = a.Trigger("player:freeze")
	env.Dialogs.Cancel()

	assert.Empty(t, env.host.Calls())
	assert.Zero(t, env.Ledger.Len())
	assert.True(t, env.Modals.IsOpen(modals.Actions))
}

func TestSafeActionRunsImmediately(t *testing.T) {
	env := newTestEnv(t)
	a := NewActions(env.Env)
	env.Modals.Open(modals.Actions, "P-0005", "Jugador5")

	require.NoError(t, a.Trigger("player:heal"))

	assert.Equal(t, []string{model.EvActionExecute}, env.host.Events())
	_, pending := env.Dialogs.Pending()
	assert.False(t, pending)
	e := env.Ledger.Entries()[0]
	assert.Equal(t, model.ActivityHeal, e.Type)
	assert.Equal(t, "Jugador5", e.SubjectName)
}

func TestActionOutsideCatalogIsSent(t *testing.T) {
	env := newTestEnv(t)
	a := NewActions(env.Env)
	env.Modals.Open(modals.Actions, "P-0005", "Jugador5")

	require.NoError(t, a.Trigger("player:teleport"))

	calls := env.host.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"player:teleport", "P-0005"}, calls[0].Args)
	assert.Empty(t, env.Dialogs.Alerts())
	assert.Equal(t, "player:teleport", env.Ledger.Entries()[0].Action)
	assert.False(t, env.Modals.IsOpen(modals.Actions))
}

func TestTriggerWithoutSubject(t *testing.T) {
	env := newTestEnv(t)
	err := NewActions(env.Env).Trigger("player:heal")
	assert.ErrorIs(t, err, ErrNoSubject)
}

func TestReplaceCatalog(t *testing.T) {
	env := newTestEnv(t)
	a := NewActions(env.Env)
	require.Len(t, a.Catalog(), 8)

	a.Replace([]model.AdminAction{{ID: "player:dance", Emoji: "💃", Label: "Bailar"}})
	env.Modals.Open(modals.Actions, "P-0001", "Jugador1")

	require.NoError(t, a.Trigger("player:dance"))
	assert.Equal(t, "💃 Bailar", env.Ledger.Entries()[0].Action)
	env.Modals.Open(modals.Actions, "P-0001", "Jugador1")
	require.NoError(t, a.Trigger("player:heal"))
	assert.Equal(t, "player:heal", env.Ledger.Entries()[0].Action, "old catalog is gone")
}
