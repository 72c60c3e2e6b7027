package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStampsAndPrepends(t *testing.T) {
	at := time.Date(2026, 1, 3, 14, 32, 0, 0, time.UTC)
	l := NewLedger().WithClock(func() time.Time { return at })

	first := l.Record(model.ActivityEntry{Type: model.ActivityBan, Action: "Baneado permanentemente"})
	second := l.Record(model.ActivityEntry{Type: model.ActivityMessage, Action: "Mensaje abierto", Icon: "✉"})

	assert.Equal(t, at, first.Timestamp)
	assert.Contains(t, first.ID, fmt.Sprintf("%d-", at.UnixMilli()))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "⛔", first.Icon)
	assert.Equal(t, "#ef4444", first.Color)
	assert.Equal(t, "✉", second.Icon)
	assert.Equal(t, "#f97316", second.Color)

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestLedgerKeepsMostRecentFifty(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 75; i++ {
		l.Record(model.ActivityEntry{Type: model.ActivityAction, Action: fmt.Sprintf("a%d", i)})
	}

	entries := l.Entries()
	require.Len(t, entries, MaxEntries)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("a%d", 74-i), e.Action)
	}
}

func TestClear(t *testing.T) {
	l := NewLedger()
	l.Record(model.ActivityEntry{Type: model.ActivitySpectate})
	l.Clear()
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Entries())
}

func TestEntriesIsACopy(t *testing.T) {
	l := NewLedger()
	l.Record(model.ActivityEntry{Type: model.ActivityHeal, Action: "x"})
	got := l.Entries()
	got[0].Action = "mutated"
	assert.Equal(t, "x", l.Entries()[0].Action)
}

func TestStyleForUnknown(t *testing.T) {
	s := StyleFor("nope")
	assert.NotEmpty(t, s.Icon)
	assert.NotEmpty(t, s.Color)
}
