package bridge

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alerts struct{ got []string }

func (a *alerts) Alert(m string) { a.got = append(a.got, m) }

type panicky struct{}

func (panicky) Send(Call) error { panic("host exploded") }

func quietNull(a Alerter) (*NullHostBridge, *bytes.Buffer) {
	var buf bytes.Buffer
	return &NullHostBridge{Alerter: a, Logger: log.New(&buf, "", 0)}, &buf
}

func TestGatewayUsesLiveWhenAvailable(t *testing.T) {
	live := &Recorder{}
	a := &alerts{}
	null, _ := quietNull(a)
	g := NewGateway(live, null)

	g.Send(NewCall("player:ban", "P-0004", -1, "x"))

	require.Len(t, live.Calls(), 1)
	assert.Equal(t, []any{"P-0004", -1, "x"}, live.Calls()[0].Args)
	assert.Empty(t, a.got)
}

func TestGatewayFallsBackWhenCapabilityAbsent(t *testing.T) {
	live := &Recorder{Offline: true}
	a := &alerts{}
	null, logs := quietNull(a)
	g := NewGateway(live, null)

	g.Send(NewCall("player:kill", "P-0001"))

	assert.Empty(t, live.Calls())
	assert.Equal(t, []string{"Acción: player:kill (Dev Mode)"}, a.got)
	assert.Contains(t, logs.String(), `[Dev Mode] player:kill ["P-0001"]`)
}

func TestGatewayNilLive(t *testing.T) {
	a := &alerts{}
	null, _ := quietNull(a)
	g := NewGateway(nil, null)
	assert.False(t, g.Live())

	g.Send(NewCall("spectate:player", "P-0002").WithNotice("Spectate: Jugador2"))
	assert.Equal(t, []string{"Spectate: Jugador2"}, a.got)
}

func TestGatewayRoutesErrorsAndPanicsToAlert(t *testing.T) {
	for name, live := range map[string]HostBridge{
		"error": &Recorder{Err: errors.New("boom")},
		"panic": panicky{},
	} {
		t.Run(name, func(t *testing.T) {
			a := &alerts{}
			null, _ := quietNull(a)
			g := NewGateway(live, null)
			g.logger = log.New(&bytes.Buffer{}, "", 0)

			assert.NotPanics(t, func() { g.Send(NewCall("broadcast:send", "hola", "info")) })
			assert.Equal(t, []string{"Acción: broadcast:send (Dev Mode)"}, a.got)
		})
	}
}

func TestGatewayWithoutFallbackDoesNotPanic(t *testing.T) {
	g := NewGateway(nil, nil)
	g.logger = log.New(&bytes.Buffer{}, "", 0)
	assert.NotPanics(t, func() { g.Send(NewCall("x")) })
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	_, ok := r.Last()
	assert.False(t, ok)

	r.Send(NewCall("a"))
	r.Send(NewCall("b"))
	assert.Equal(t, []string{"a", "b"}, r.Events())
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.Event)

	r.Reset()
	assert.Empty(t, r.Calls())
}
