package dashboard

import (
	"testing"

	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(ps []model.Player) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestFilterPlayersLevelRangeSortedByLevel(t *testing.T) {
	f := DefaultPlayerFilters()
	f.MinLevel, f.MaxLevel, f.SortBy = 30, 50, SortLevel

	got := FilterPlayers(model.MockPlayers(), "", f, nil)
	assert.Equal(t, []string{"Jugador1", "Jugador5", "Jugador2"}, names(got))
}

func TestFilterPlayersDefaultSortsByName(t *testing.T) {
	got := FilterPlayers(model.MockPlayers(), "", DefaultPlayerFilters(), nil)
	assert.Equal(t, []string{"Jugador1", "Jugador2", "Jugador3", "Jugador4", "Jugador5", "Jugador6"}, names(got))
}

func TestFilterPlayersSearch(t *testing.T) {
	f := DefaultPlayerFilters()
	for search, want := range map[string][]string{
		"ghostly":  {"Jugador3"},
		"p-0006":   {"Jugador6"},
		"JUGADOR4": {"Jugador4"},
		"nadie":    {},
	} {
		assert.Equal(t, want, names(FilterPlayers(model.MockPlayers(), search, f, nil)), search)
	}
}

func TestFilterPlayersPresenceAndStatus(t *testing.T) {
	players := model.MockPlayers()
	f := DefaultPlayerFilters()
	f.Presence = string(model.Online)
	for _, p := range FilterPlayers(players, "", f, nil) {
		assert.Equal(t, model.Online, p.Presence)
	}

	f = DefaultPlayerFilters()
	f.AccountStatus = string(model.StatusBanned)
	for _, p := range FilterPlayers(players, "", f, nil) {
		assert.Equal(t, model.StatusBanned, p.AccountStatus)
	}
}

func TestPlayersVisibleFollowsSearch(t *testing.T) {
	env := newTestEnv(t)
	p := newTestPlayers(env.Env)

	assert.Len(t, p.Visible(), 6)
	p.Search = "venom"
	assert.Equal(t, []string{"Jugador5"}, names(p.Visible()))
	p.Search = ""
	assert.Len(t, p.Visible(), 6)
}

func TestApplyFiltersRejectsInvertedRange(t *testing.T) {
	env := newTestEnv(t)
	p := newTestPlayers(env.Env)
	p.OpenFilter()

	f := DefaultPlayerFilters()
	f.MinLevel, f.MaxLevel = 60, 20
	err := p.ApplyFilters(f)

	require.Error(t, err)
	assert.Equal(t, DefaultPlayerFilters(), p.Filters)
	assert.True(t, env.Modals.IsOpen(modals.Filter))
	assert.Len(t, env.Dialogs.Alerts(), 1)
}

func TestApplyFiltersClosesDialog(t *testing.T) {
	env := newTestEnv(t)
	p := newTestPlayers(env.Env)
	p.OpenFilter()

	f := DefaultPlayerFilters()
	f.SortBy = SortMoney
	require.NoError(t, p.ApplyFilters(f))

	assert.False(t, env.Modals.IsOpen(modals.Filter))
	assert.Equal(t, "Jugador3", p.Visible()[0].Name)
	assert.Empty(t, env.host.Calls(), "filters are local")
}

func TestCounts(t *testing.T) {
	env := newTestEnv(t)
	c := newTestPlayers(env.Env).Counts()
	assert.Equal(t, 6, c.Total)
	assert.Equal(t, c.Total, c.Online+c.Offline)
}

func TestSpectateEmitsAndRecords(t *testing.T) {
	env := newTestEnv(t)
	p := newTestPlayers(env.Env)

	require.NoError(t, p.Spectate("P-0002"))

	last, ok := env.host.Last()
	require.True(t, ok)
	assert.Equal(t, model.EvSpectate, last.Event)
	assert.Equal(t, []any{"P-0002"}, last.Args)

	entries := env.Ledger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Espectate iniciado", entries[0].Action)
	assert.Equal(t, "#a855f7", entries[0].Color)
	assert.Equal(t, "Jugador2", entries[0].SubjectName)
}

func TestOpenActionsQueriesCatalog(t *testing.T) {
	env := newTestEnv(t)
	p := newTestPlayers(env.Env)

	require.NoError(t, p.OpenActions("P-0001"))

	s := env.Modals.State(modals.Actions)
	assert.True(t, s.IsOpen)
	assert.Equal(t, "P-0001", s.SubjectID)
	assert.Equal(t, []string{model.EvActionsGet}, env.host.Events())
	assert.Equal(t, "Acciones modal abierto", env.Ledger.Entries()[0].Action)
}

func TestOpenUnknownPlayer(t *testing.T) {
	env := newTestEnv(t)
	p := newTestPlayers(env.Env)

	err := p.OpenBan("P-9999")
	assert.ErrorIs(t, err, ErrNoSubject)
	assert.False(t, env.Modals.IsOpen(modals.Ban))
	assert.Zero(t, env.Ledger.Len())
}

func TestViewInventoryCopiesItems(t *testing.T) {
	env := newTestEnv(t)
	p := newTestPlayers(env.Env)

	require.NoError(t, p.ViewInventory("P-0004"))
	s := env.Modals.State(modals.Inventory)
	require.Len(t, s.Items, 2)

	s.Items[0].Count = 0
	assert.Equal(t, 45000, p.Inventory("P-0004")[0].Count)
}
