// Package dashboard holds the entity views of the admin console and the
// optimistic mutation contract they share: validate, confirm when
// dangerous, apply locally, emit to the host, record, close.
package dashboard

import (
	"log"
	"sync"
	"time"

	"github.com/puyokura/nuiadmin/activity"
	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/modals"
)

// Sender is the outward side of the bridge gateway.
type Sender interface {
	Send(c bridge.Call)
	Live() bool
}

// Env is the shared state every view mutates through.
type Env struct {
	Bridge  Sender
	Ledger  *activity.Ledger
	Modals  *modals.Registry
	Dialogs *Dialogs
	Now     func() time.Time
	Logger  *log.Logger
}

// NewEnv wires a fresh ledger, registry and dialog stack around sender.
func NewEnv(sender Sender, dialogs *Dialogs) *Env {
	if dialogs == nil {
		dialogs = &Dialogs{}
	}
	return &Env{
		Bridge:  sender,
		Ledger:  activity.NewLedger(),
		Modals:  modals.NewRegistry(),
		Dialogs: dialogs,
		Now:     time.Now,
		Logger:  log.Default(),
	}
}

// Query sends a read-only request to the host. Without a live host it is
// logged and dropped rather than alerted.
func (e *Env) Query(c bridge.Call) {
	if !e.Bridge.Live() {
		e.Logger.Printf("[Dev Mode] skipped %s", c.Event)
		return
	}
	e.Bridge.Send(c)
}

// Confirmation is a pending yes/no question.
type Confirmation struct {
	Title       string
	Description string
	Dangerous   bool
	OnConfirm   func()
	OnCancel    func()
}

// Dialogs is the blocking layer above every view: confirmations waiting
// for an answer and alerts waiting to be dismissed. It implements
// bridge.Alerter.
type Dialogs struct {
	mu      sync.Mutex
	pending []Confirmation
	alerts  []string
}

// Ask queues c.
func (d *Dialogs) Ask(c Confirmation) {
	d.mu.Lock()
	d.pending = append(d.pending, c)
	d.mu.Unlock()
}

// Pending returns the confirmation awaiting an answer.
func (d *Dialogs) Pending() (Confirmation, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pending) == 0 {
		return Confirmation{}, false
	}
	return d.pending[0], true
}

// Confirm answers the pending confirmation with yes.
func (d *Dialogs) Confirm() bool {
	c, ok := d.pop()
	if ok && c.OnConfirm != nil {
		c.OnConfirm()
	}
	return ok
}

// Cancel answers the pending confirmation with no.
func (d *Dialogs) Cancel() bool {
	c, ok := d.pop()
	if ok && c.OnCancel != nil {
		c.OnCancel()
	}
	return ok
}

func (d *Dialogs) pop() (Confirmation, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pending) == 0 {
		return Confirmation{}, false
	}
	c := d.pending[0]
	d.pending = d.pending[1:]
	return c, true
}

func (d *Dialogs) Alert(message string) {
	d.mu.Lock()
	d.alerts = append(d.alerts, message)
	d.mu.Unlock()
}

// CurrentAlert returns the oldest undismissed alert.
func (d *Dialogs) CurrentAlert() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.alerts) == 0 {
		return "", false
	}
	return d.alerts[0], true
}

func (d *Dialogs) DismissAlert() {
	d.mu.Lock()
	if len(d.alerts) > 0 {
		d.alerts = d.alerts[1:]
	}
	d.mu.Unlock()
}

// Alerts returns every undismissed alert, oldest first.
func (d *Dialogs) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.alerts...)
}

// Blocking reports whether a confirmation or alert is showing.
func (d *Dialogs) Blocking() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending) > 0 || len(d.alerts) > 0
}
