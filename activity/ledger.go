// Package activity holds the operator's audit feed: a capped, newest-first
// list of what the dashboard asked the host to do.
package activity

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puyokura/nuiadmin/model"
)

// MaxEntries bounds the ledger.
const MaxEntries = 50

// Style is the default icon and colour for an activity type.
type Style struct {
	Icon  string
	Color string
}

var styles = map[model.ActivityType]Style{
	model.ActivityMessage:   {"💬", "#f97316"},
	model.ActivitySuspend:   {"⏸", "#eab308"},
	model.ActivityBan:       {"⛔", "#ef4444"},
	model.ActivitySpectate:  {"👁", "#a855f7"},
	model.ActivityBroadcast: {"📢", "#3b82f6"},
	model.ActivityAction:    {"⚙", "#3b82f6"},
	model.ActivityHeal:      {"💚", "#22c55e"},
	model.ActivityKill:      {"💀", "#ef4444"},
	model.ActivityFreeze:    {"❄", "#06b6d4"},
	model.ActivityInventory: {"🎒", "#22c55e"},
}

// StyleFor returns the default style of t.
func StyleFor(t model.ActivityType) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return Style{Icon: "•", Color: "#a3a3a3"}
}

// Ledger is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	entries []model.ActivityEntry
	now     func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// WithClock replaces the ledger's time source. Used by tests.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Record stamps e with an id and timestamp and prepends it, evicting the
// oldest entries beyond MaxEntries. The stamped entry is returned.
func (l *Ledger) Record(e model.ActivityEntry) model.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e.ID = fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
	e.Timestamp = now
	if e.Icon == "" || e.Color == "" {
		s := StyleFor(e.Type)
		if e.Icon == "" {
			e.Icon = s.Icon
		}
		if e.Color == "" {
			e.Color = s.Color
		}
	}

	next := make([]model.ActivityEntry, 0, MaxEntries)
	next = append(next, e)
	for _, old := range l.entries {
		if len(next) == MaxEntries {
			break
		}
		next = append(next, old)
	}
	l.entries = next
	return e
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// Entries returns a copy of the ledger, newest first.
func (l *Ledger) Entries() []model.ActivityEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
