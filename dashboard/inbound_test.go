package dashboard

import (
	"encoding/json"
	"io"
	"log"
	"testing"

	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(env *Env) *Router {
	return &Router{Actions: NewActions(env), Tickets: NewTickets(env), Logger: log.New(io.Discard, "", 0)}
}

func TestRouterReplacesActions(t *testing.T) {
	env := newTestEnv(t)
	r := newRouter(env.Env)

	ev, err := model.NewPush(model.PushActions, []model.AdminAction{{ID: "player:revive", Emoji: "✨", Label: "Revivir"}})
	require.NoError(t, err)
	require.NoError(t, r.Handle(ev))

	got := r.Actions.Catalog()
	require.Len(t, got, 1)
	assert.Equal(t, "player:revive", got[0].ID)
}

func TestRouterReplacesTickets(t *testing.T) {
	env := newTestEnv(t)
	r := newRouter(env.Env)

	ev, err := model.NewPush(model.PushTickets, []model.Ticket{{ID: "TK-900", Priority: model.PriorityHigh, Status: model.TicketOpen}})
	require.NoError(t, err)
	require.NoError(t, r.Handle(ev))
	assert.Equal(t, []string{"TK-900"}, ticketIDs(r.Tickets.Visible()))
}

func TestRouterRejectsBadPayload(t *testing.T) {
	env := newTestEnv(t)
	r := newRouter(env.Env)

	err := r.Handle(model.Event{Type: model.EventPush, Name: model.PushTickets, Payload: json.RawMessage(`{"id":1}`)})
	assert.Error(t, err)
	assert.Len(t, r.Tickets.Visible(), 3, "state untouched")
}

func TestRouterIgnoresOthers(t *testing.T) {
	env := newTestEnv(t)
	r := newRouter(env.Env)

	for _, ev := range []model.Event{
		{Type: model.EventPush, Name: model.PushJobs, Payload: json.RawMessage(`[]`)},
		{Type: model.EventPush, Name: "weather:update"},
		{Type: model.EventEmit, Name: model.PushActions},
	} {
		assert.NoError(t, r.Handle(ev), ev.Name)
	}
	assert.Len(t, r.Actions.Catalog(), 8)
}
