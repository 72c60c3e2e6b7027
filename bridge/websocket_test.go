package bridge

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost accepts one connection, answers auth with the given verdict,
// forwards received emits to got and pushes one tickets update.
func fakeHost(t *testing.T, accept bool, got chan<- model.Event) *httptest.Server {
	t.Helper()
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var auth model.Event
		if err := conn.ReadJSON(&auth); err != nil || auth.Type != model.EventAuth {
			return
		}
		if !accept {
			conn.WriteJSON(model.Event{Type: model.EventError, Name: "auth"})
			return
		}
		conn.WriteJSON(model.Event{Type: model.EventPush, Name: "auth:ok"})

		var ev model.Event
		if err := conn.ReadJSON(&ev); err != nil {
			return
		}
		got <- ev

		push, _ := model.NewPush(model.PushTickets, model.MockTickets()[:1])
		conn.WriteJSON(push)
		conn.ReadMessage()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestHostURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:8999/ws", HostURL("localhost"))
	assert.Equal(t, "ws://10.0.0.2:30120/ws", HostURL("10.0.0.2:30120"))
	assert.Equal(t, "wss://host/ws", HostURL("wss://host/ws"))
}

func TestWebsocketBridgeRoundTrip(t *testing.T) {
	got := make(chan model.Event, 1)
	srv := fakeHost(t, true, got)

	b := NewWebsocketBridge()
	assert.False(t, b.Available())
	require.ErrorIs(t, b.Send(NewCall("x")), ErrNotConnected)

	require.NoError(t, b.Connect(wsURL(srv)))
	assert.False(t, b.Available(), "not available until the host accepts auth")
	require.ErrorIs(t, b.Send(NewCall(model.EvPlayerBan, "P-0001")), ErrNotConnected)

	require.NoError(t, b.Authenticate("admin", "secret"))
	assert.True(t, b.Available())

	require.NoError(t, b.Send(NewCall(model.EvTicketStatus, "TK-001", "closed")))
	ev := <-got
	assert.Equal(t, model.EventEmit, ev.Type)
	assert.Equal(t, model.EvTicketStatus, ev.Name)
	var status string
	require.NoError(t, ev.Arg(1, &status))
	assert.Equal(t, "closed", status)

	push, err := b.Next()
	require.NoError(t, err)
	assert.Equal(t, model.PushTickets, push.Name)
	var tickets []model.Ticket
	require.NoError(t, json.Unmarshal(push.Payload, &tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, "TK-001", tickets[0].ID)

	b.Disconnect()
	assert.False(t, b.Available())
	_, err = b.Next()
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestWebsocketBridgeAuthRejected(t *testing.T) {
	srv := fakeHost(t, false, make(chan model.Event, 1))

	b := NewWebsocketBridge()
	require.NoError(t, b.Connect(wsURL(srv)))
	assert.ErrorIs(t, b.Authenticate("admin", "wrong"), ErrAuthRejected)
	assert.False(t, b.Available())
}

func TestWebsocketBridgeDialFailure(t *testing.T) {
	b := NewWebsocketBridge()
	assert.Error(t, b.Connect("ws://127.0.0.1:1/ws"))
	assert.False(t, b.Available())
}
