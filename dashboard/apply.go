package dashboard

import (
	"errors"
	"strings"

	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
)

// ErrAwaitingConfirmation is returned by Run when the mutation was parked
// behind a confirmation. It is not a failure.
var ErrAwaitingConfirmation = errors.New("awaiting confirmation")

// Mutation is one optimistic operator action. Every field is optional.
type Mutation struct {
	Validate func() error
	Confirm  *Confirmation
	Apply    func()
	Emit     *bridge.Call
	Record   *model.ActivityEntry
	Close    []modals.Kind
}

// Run executes m: validate, confirm, apply, emit, record, close. A
// validation error is alerted and returned with nothing else done. When
// m.Confirm is set the remaining steps run from the confirmation's
// OnConfirm. There is no rollback if the host later disagrees.
func (e *Env) Run(m Mutation) error {
	if m.Validate != nil {
		if err := m.Validate(); err != nil {
			e.Dialogs.Alert(err.Error())
			return err
		}
	}
	if m.Confirm != nil {
		c := *m.Confirm
		onConfirm := c.OnConfirm
		c.OnConfirm = func() {
			e.commit(m)
			if onConfirm != nil {
				onConfirm()
			}
		}
		e.Dialogs.Ask(c)
		return ErrAwaitingConfirmation
	}
	e.commit(m)
	return nil
}

func (e *Env) commit(m Mutation) {
	if m.Apply != nil {
		m.Apply()
	}
	if m.Emit != nil {
		e.Bridge.Send(*m.Emit)
	}
	if m.Record != nil {
		e.Ledger.Record(*m.Record)
	}
	for _, k := range m.Close {
		e.Modals.Close(k)
	}
}

var dangerousActions = map[string]bool{
	"kill":        true,
	"freeze":      true,
	"electrocute": true,
	"burn":        true,
	"slap":        true,
}

// IsDangerous reports whether actionID needs an explicit confirmation.
// Both "kill" and "player:kill" forms are accepted.
func IsDangerous(actionID string) bool {
	if i := strings.LastIndex(actionID, ":"); i >= 0 {
		actionID = actionID[i+1:]
	}
	return dangerousActions[actionID]
}

// StatusNeedsConfirmation reports whether moving a ticket to s is gated,
// and whether the gate is flagged dangerous.
func StatusNeedsConfirmation(s model.TicketStatus) (gated, dangerous bool) {
	switch s {
	case model.TicketClosed:
		return true, true
	case model.TicketResolved:
		return true, false
	}
	return false, false
}
