package dashboard

import (
	"fmt"
	"sort"

	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll disables a categorical filter.
const FilterAll = "all"

const (
	MinPlayerLevel = 1
	MaxPlayerLevel = 99
)

type SortKey string

const (
	SortName       SortKey = "name"
	SortLevel      SortKey = "level"
	SortMoney      SortKey = "money"
	SortKills      SortKey = "kills"
	SortReputation SortKey = "reputation"
)

// SortKeys in the order the filter dialog offers them.
var SortKeys = []SortKey{SortName, SortLevel, SortMoney, SortKills, SortReputation}

// PlayerFilters is the state of the filter dialog.
type PlayerFilters struct {
	Presence      string
	AccountStatus string
	MinLevel      int
	MaxLevel      int
	SortBy        SortKey
}

func DefaultPlayerFilters() PlayerFilters {
	return PlayerFilters{
		Presence:      FilterAll,
		AccountStatus: FilterAll,
		MinLevel:      MinPlayerLevel,
		MaxLevel:      MaxPlayerLevel,
		SortBy:        SortName,
	}
}

// FilterPlayers derives the visible roster: free-text search over name, id
// and band, then presence and account status, then the inclusive level
// range, then a stable sort. Names sort by locale collation ascending;
// numeric keys sort descending.
func FilterPlayers(players []model.Player, search string, f PlayerFilters, coll *collate.Collator) []model.Player {
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if search != "" && !containsFold(p.Name, search) && !containsFold(p.ID, search) && !containsFold(p.Band, search) {
			continue
		}
		if f.Presence != "" && f.Presence != FilterAll && string(p.Presence) != f.Presence {
			continue
		}
		if f.AccountStatus != "" && f.AccountStatus != FilterAll && string(p.AccountStatus) != f.AccountStatus {
			continue
		}
		if p.Level < f.MinLevel || p.Level > f.MaxLevel {
			continue
		}
		out = append(out, p)
	}

	var less func(a, b model.Player) bool
	switch f.SortBy {
	case SortLevel:
		less = func(a, b model.Player) bool { return a.Level > b.Level }
	case SortMoney:
		less = func(a, b model.Player) bool { return a.Money > b.Money }
	case SortKills:
		less = func(a, b model.Player) bool { return a.Kills > b.Kills }
	case SortReputation:
		less = func(a, b model.Player) bool { return a.Reputation > b.Reputation }
	default:
		if coll == nil {
			coll = collate.New(language.English)
		}
		less = func(a, b model.Player) bool { return coll.CompareString(a.Name, b.Name) < 0 }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// PlayerCounts are the roster counters shown on the command center.
type PlayerCounts struct {
	Total, Online, Offline, Banned, Suspended int
}

type playersKey struct {
	search  string
	filters PlayerFilters
	version int
}

// Players is the roster view.
type Players struct {
	env         *Env
	players     []model.Player
	inventories map[string][]model.InventorySlot
	coll        *collate.Collator

	Search   string
	Filters  PlayerFilters
	selected string
	version  int
	visible  memo[playersKey, []model.Player]
}

func NewPlayers(env *Env, lang language.Tag) *Players {
	return &Players{
		env:         env,
		players:     model.MockPlayers(),
		inventories: model.MockInventories(),
		coll:        collate.New(lang, collate.IgnoreCase),
		Filters:     DefaultPlayerFilters(),
	}
}

// SetLanguage switches the collation used for name sorting.
func (p *Players) SetLanguage(lang language.Tag) {
	p.coll = collate.New(lang, collate.IgnoreCase)
	p.visible.reset()
}

// Visible returns the filtered, sorted roster.
func (p *Players) Visible() []model.Player {
	key := playersKey{search: p.Search, filters: p.Filters, version: p.version}
	return p.visible.get(key, func() []model.Player {
		return FilterPlayers(p.players, p.Search, p.Filters, p.coll)
	})
}

func (p *Players) All() []model.Player {
	return append([]model.Player(nil), p.players...)
}

func (p *Players) Get(id string) (model.Player, bool) {
	for _, pl := range p.players {
		if pl.ID == id {
			return pl, true
		}
	}
	return model.Player{}, false
}

func (p *Players) Select(id string) { p.selected = id }

func (p *Players) Selected() (model.Player, bool) { return p.Get(p.selected) }

func (p *Players) Counts() PlayerCounts {
	c := PlayerCounts{Total: len(p.players)}
	for _, pl := range p.players {
		if pl.Presence == model.Online {
			c.Online++
		} else {
			c.Offline++
		}
		switch pl.AccountStatus {
		case model.StatusBanned:
			c.Banned++
		case model.StatusSuspended:
			c.Suspended++
		}
	}
	return c
}

// Inventory returns a copy of a player's stored inventory.
func (p *Players) Inventory(id string) []model.InventorySlot {
	return append([]model.InventorySlot(nil), p.inventories[id]...)
}

// StoreInventory replaces a player's stored inventory. The inventory view
// writes back through it after every local change.
func (p *Players) StoreInventory(id string, items []model.InventorySlot) {
	p.inventories[id] = append([]model.InventorySlot(nil), items...)
}

// ApplyFilters validates and installs f, then closes the filter dialog.
func (p *Players) ApplyFilters(f PlayerFilters) error {
	return p.env.Run(Mutation{
		Validate: func() error {
			if f.MinLevel < MinPlayerLevel || f.MaxLevel > MaxPlayerLevel || f.MinLevel > f.MaxLevel {
				return invalid("level", "El rango de nivel debe estar entre %d y %d", MinPlayerLevel, MaxPlayerLevel)
			}
			return nil
		},
		Apply: func() { p.Filters = f },
		Close: []modals.Kind{modals.Filter},
	})
}

func (p *Players) ResetFilters() { p.Filters = DefaultPlayerFilters() }

func (p *Players) record(t model.ActivityType, action string, pl model.Player, color string) {
	p.env.Ledger.Record(model.ActivityEntry{
		Type: t, Action: action, Color: color,
		SubjectID: pl.ID, SubjectName: pl.Name,
	})
}

func (p *Players) subject(id string) (model.Player, error) {
	pl, ok := p.Get(id)
	if !ok {
		return model.Player{}, fmt.Errorf("player %s: %w", id, ErrNoSubject)
	}
	return pl, nil
}

// OpenMessage opens the message dialog for a player.
func (p *Players) OpenMessage(id string) error {
	pl, err := p.subject(id)
	if err != nil {
		return err
	}
	p.env.Modals.Open(modals.Message, pl.ID, pl.Name)
	p.record(model.ActivityMessage, "Mensaje abierto", pl, "")
	return nil
}

// Spectate asks the host to put the operator's camera on a player.
func (p *Players) Spectate(id string) error {
	pl, err := p.subject(id)
	if err != nil {
		return err
	}
	call := bridge.NewCall(model.EvSpectate, pl.ID).WithNotice(fmt.Sprintf("Spectate: %s (Dev Mode)", pl.Name))
	return p.env.Run(Mutation{
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivitySpectate, Action: "Espectate iniciado", Color: "#a855f7", SubjectID: pl.ID, SubjectName: pl.Name},
	})
}

// ViewInventory opens the inventory modal with the player's items.
func (p *Players) ViewInventory(id string) error {
	pl, err := p.subject(id)
	if err != nil {
		return err
	}
	p.env.Modals.OpenInventory(pl.ID, pl.Name, p.inventories[pl.ID])
	p.record(model.ActivityInventory, "Inventario visualizado", pl, "#22c55e")
	return nil
}

func (p *Players) OpenActions(id string) error {
	pl, err := p.subject(id)
	if err != nil {
		return err
	}
	p.env.Modals.Open(modals.Actions, pl.ID, pl.Name)
	p.env.Query(bridge.NewCall(model.EvActionsGet))
	p.record(model.ActivityAction, "Acciones modal abierto", pl, "#3b82f6")
	return nil
}

func (p *Players) OpenSuspend(id string) error {
	pl, err := p.subject(id)
	if err != nil {
		return err
	}
	p.env.Modals.Open(modals.Suspend, pl.ID, pl.Name)
	p.record(model.ActivitySuspend, "Suspensión modal abierto", pl, "")
	return nil
}

func (p *Players) OpenBan(id string) error {
	pl, err := p.subject(id)
	if err != nil {
		return err
	}
	p.env.Modals.Open(modals.Ban, pl.ID, pl.Name)
	p.record(model.ActivityBan, "Ban modal abierto", pl, "")
	return nil
}

func (p *Players) OpenBroadcast() { p.env.Modals.Open(modals.Broadcast, "", "") }
func (p *Players) OpenFilter()    { p.env.Modals.Open(modals.Filter, "", "") }
