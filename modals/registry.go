// Package modals tracks which dashboard overlays are open and what they
// are about. Each kind has its own slot, so an inventory can stay open
// while the actions dialog for the same player is shown.
package modals

import (
	"sync"

	"github.com/puyokura/nuiadmin/model"
)

type Kind int

const (
	Inventory Kind = iota
	Actions
	Broadcast
	Filter
	Suspend
	Ban
	Message
)

// Kinds lists every modal kind in render order.
var Kinds = []Kind{Inventory, Actions, Broadcast, Filter, Suspend, Ban, Message}

func (k Kind) String() string {
	switch k {
	case Inventory:
		return "inventory"
	case Actions:
		return "actions"
	case Broadcast:
		return "broadcast"
	case Filter:
		return "filter"
	case Suspend:
		return "suspend"
	case Ban:
		return "ban"
	case Message:
		return "message"
	}
	return "unknown"
}

// State is one kind's slot. The zero value is the closed shape.
type State struct {
	IsOpen      bool
	SubjectID   string
	SubjectName string
	Items       []model.InventorySlot
}

// Registry is the single owner of modal state.
type Registry struct {
	mu        sync.RWMutex
	states    map[Kind]State
	hidden    bool
	closed    bool
	listeners []func(Kind, State)
}

func NewRegistry() *Registry {
	return &Registry{states: make(map[Kind]State)}
}

// Open marks kind open for the given subject, replacing whatever the slot
// held before.
func (r *Registry) Open(kind Kind, subjectID, subjectName string) {
	r.set(kind, State{IsOpen: true, SubjectID: subjectID, SubjectName: subjectName})
}

// OpenInventory opens the inventory slot with a private copy of items.
func (r *Registry) OpenInventory(subjectID, subjectName string, items []model.InventorySlot) {
	cp := make([]model.InventorySlot, len(items))
	copy(cp, items)
	r.set(Inventory, State{IsOpen: true, SubjectID: subjectID, SubjectName: subjectName, Items: cp})
}

// Close resets kind to the closed shape. Closing a closed kind is a no-op.
func (r *Registry) Close(kind Kind) {
	r.set(kind, State{})
}

func (r *Registry) set(kind Kind, s State) {
	r.mu.Lock()
	if s.IsOpen {
		r.states[kind] = s
	} else {
		delete(r.states, kind)
	}
	listeners := r.listeners
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(kind, s)
	}
}

// State returns a copy of kind's slot.
func (r *Registry) State(kind Kind) State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.states[kind]
	if s.Items != nil {
		s.Items = append([]model.InventorySlot(nil), s.Items...)
	}
	return s
}

func (r *Registry) IsOpen(kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[kind].IsOpen
}

// OpenKinds returns the open kinds in render order.
func (r *Registry) OpenKinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Kind
	for _, k := range Kinds {
		if r.states[k].IsOpen {
			out = append(out, k)
		}
	}
	return out
}

// OnChange registers fn to be called after every open or close.
func (r *Registry) OnChange(fn func(Kind, State)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// Minimize hides the dashboard behind the floating icon.
func (r *Registry) Minimize() {
	r.mu.Lock()
	r.hidden = true
	r.mu.Unlock()
}

// Restore brings the dashboard back from the floating icon.
func (r *Registry) Restore() {
	r.mu.Lock()
	r.hidden = false
	r.mu.Unlock()
}

// CloseDashboard hides the dashboard for good; the shell quits on it.
func (r *Registry) CloseDashboard() {
	r.mu.Lock()
	r.hidden = true
	r.closed = true
	r.mu.Unlock()
}

func (r *Registry) DashboardVisible() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.hidden
}

func (r *Registry) DashboardClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}
