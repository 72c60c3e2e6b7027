package dashboard

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/puyokura/nuiadmin/bridge"
	"golang.org/x/text/language"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

// testEnv is an Env whose bridge records every call.
type testEnv struct {
	*Env
	host *bridge.Recorder
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	host := &bridge.Recorder{}
	return testEnv{Env: envAround(bridge.NewGateway(host, nil)), host: host}
}

// newDevEnv has no host; calls go to the dev-mode bridge, which alerts.
func newDevEnv(t *testing.T) *Env {
	t.Helper()
	dialogs := &Dialogs{}
	null := bridge.NewNullHostBridge(dialogs)
	null.Logger = log.New(io.Discard, "", 0)
	env := envAround(bridge.NewGateway(nil, null))
	env.Dialogs = dialogs
	return env
}

func envAround(g *bridge.Gateway) *Env {
	env := NewEnv(g, nil)
	env.Now = func() time.Time { return fixedNow }
	env.Logger = log.New(io.Discard, "", 0)
	env.Ledger.WithClock(env.Now)
	return env
}

func newTestPlayers(env *Env) *Players { return NewPlayers(env, language.English) }
