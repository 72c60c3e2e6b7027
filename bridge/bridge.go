// Package bridge is the dashboard's only way to ask the game host to do
// something. Calls are fire-and-forget: nothing is returned to the caller,
// nothing is retried, and a failing host never breaks the dashboard.
package bridge

import (
	"errors"
	"fmt"
	"log"
)

// ErrNotConnected is returned by live bridges without a connection.
var ErrNotConnected = errors.New("bridge: not connected")

// Call is one outward event.
type Call struct {
	Event string
	Args  []any
	// Notice describes the intended effect; shown when no host is present.
	Notice string
}

// NewCall is shorthand for a Call without a notice.
func NewCall(event string, args ...any) Call {
	return Call{Event: event, Args: args}
}

// WithNotice returns c with its dev-mode notice set.
func (c Call) WithNotice(notice string) Call {
	c.Notice = notice
	return c
}

// DevNotice is the text shown for c when no host is present.
func (c Call) DevNotice() string {
	if c.Notice != "" {
		return c.Notice
	}
	return fmt.Sprintf("Acción: %s (Dev Mode)", c.Event)
}

// HostBridge forwards a call to the host.
type HostBridge interface {
	Send(c Call) error
}

// Capable is implemented by bridges whose availability changes at runtime.
type Capable interface {
	Available() bool
}

// Alerter shows a blocking message to the operator.
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(string)

func (f AlertFunc) Alert(message string) { f(message) }

// Gateway picks between the live bridge and the dev-mode fallback on every
// call.
type Gateway struct {
	live     HostBridge
	fallback HostBridge
	logger   *log.Logger
}

// NewGateway returns a gateway that prefers live and degrades to fallback.
// live may be nil.
func NewGateway(live, fallback HostBridge) *Gateway {
	return &Gateway{live: live, fallback: fallback, logger: log.Default()}
}

// Live reports whether the next call would go to the live bridge.
func (g *Gateway) Live() bool {
	if g.live == nil {
		return false
	}
	if c, ok := g.live.(Capable); ok {
		return c.Available()
	}
	return true
}

// Send forwards c. Errors and panics from the live bridge are logged and
// routed to the fallback; they never reach the caller.
func (g *Gateway) Send(c Call) {
	if !g.Live() {
		g.sendFallback(c)
		return
	}
	if err := safeSend(g.live, c); err != nil {
		g.logger.Printf("bridge: %s failed: %v", c.Event, err)
		g.sendFallback(c)
	}
}

func (g *Gateway) sendFallback(c Call) {
	if g.fallback == nil {
		g.logger.Printf("bridge: dropped %s, no fallback", c.Event)
		return
	}
	if err := safeSend(g.fallback, c); err != nil {
		g.logger.Printf("bridge: fallback for %s failed: %v", c.Event, err)
	}
}

func safeSend(b HostBridge, c Call) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return b.Send(c)
}
