package dashboard

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
)

type WeightLevel string

const (
	WeightSafe     WeightLevel = "safe"
	WeightWarning  WeightLevel = "warning"
	WeightCritical WeightLevel = "critical"
)

// ItemForm is the raw input of the give/drop/delete dialogs.
type ItemForm struct {
	Name     string
	Quantity string
}

// Cell is one visual slot of the grid; Item is nil for empty slots.
type Cell struct {
	Slot int
	Item *model.InventorySlot
}

// Inventory is the inventory dialog for one player. It works on a private
// copy of the items captured when the dialog opened and hands every change
// to onChange.
type Inventory struct {
	env        *Env
	playerID   string
	playerName string
	items      []model.InventorySlot
	onChange   func(playerID string, items []model.InventorySlot)
}

// OpenInventory builds the view from the inventory modal's current state.
func OpenInventory(env *Env, onChange func(string, []model.InventorySlot)) (*Inventory, error) {
	s, err := env.modalSubject(modals.Inventory)
	if err != nil {
		return nil, err
	}
	inv := &Inventory{env: env, playerID: s.SubjectID, playerName: s.SubjectName, items: s.Items, onChange: onChange}
	inv.sort()
	return inv, nil
}

func (i *Inventory) PlayerID() string   { return i.playerID }
func (i *Inventory) PlayerName() string { return i.playerName }

func (i *Inventory) Items() []model.InventorySlot {
	return append([]model.InventorySlot(nil), i.items...)
}

// Grid lays the items out over every visual slot.
func (i *Inventory) Grid() []Cell {
	cells := make([]Cell, model.InventorySlots)
	for n := range cells {
		cells[n].Slot = n + 1
	}
	for n := range i.items {
		it := i.items[n]
		if it.Slot >= 1 && it.Slot <= model.InventorySlots {
			cells[it.Slot-1].Item = &it
		}
	}
	return cells
}

func (i *Inventory) TotalWeight() int {
	total := 0
	for _, it := range i.items {
		total += it.TotalWeight
	}
	return total
}

func (i *Inventory) WeightRatio() float64 {
	return float64(i.TotalWeight()) / model.MaxInventoryWeight
}

func (i *Inventory) WeightLevel() WeightLevel {
	switch r := i.WeightRatio(); {
	case r >= model.WeightCritical:
		return WeightCritical
	case r >= model.WeightWarning:
		return WeightWarning
	}
	return WeightSafe
}

func (i *Inventory) indexBySlot(slot int) int {
	for n, it := range i.items {
		if it.Slot == slot {
			return n
		}
	}
	return -1
}

func (i *Inventory) indexByName(name string) int {
	for n, it := range i.items {
		if it.Name == name {
			return n
		}
	}
	return -1
}

func (i *Inventory) freeSlot() int {
	used := make(map[int]bool, len(i.items))
	for _, it := range i.items {
		used[it.Slot] = true
	}
	for s := 1; s <= model.InventorySlots; s++ {
		if !used[s] {
			return s
		}
	}
	return 0
}

func (i *Inventory) sort() {
	sort.SliceStable(i.items, func(a, b int) bool { return i.items[a].Slot < i.items[b].Slot })
}

func (i *Inventory) changed() {
	i.sort()
	if i.onChange != nil {
		i.onChange(i.playerID, i.Items())
	}
}

func (i *Inventory) entry(action string) *model.ActivityEntry {
	return &model.ActivityEntry{Type: model.ActivityInventory, Action: action, SubjectID: i.playerID, SubjectName: i.playerName}
}

// Move puts the item at from into slot to. An item already at to swaps
// into from, so exactly one item ends up holding to.
func (i *Inventory) Move(from, to int) error {
	src := i.indexBySlot(from)
	label := ""
	if src >= 0 {
		label = i.items[src].Label
	}
	call := bridge.NewCall(model.EvInventoryMove, i.playerID, from, to)

	return i.env.Run(Mutation{
		Validate: func() error {
			if src < 0 {
				return invalid("from", "No hay ningún item en el slot %d", from)
			}
			if to < 1 || to > model.InventorySlots {
				return invalid("to", "Slot inválido: %d", to)
			}
			return nil
		},
		Apply: func() {
			if from == to {
				return
			}
			if dst := i.indexBySlot(to); dst >= 0 {
				i.items[dst].Slot = from
			}
			i.items[src].Slot = to
			i.changed()
		},
		Emit:   &call,
		Record: i.entry(fmt.Sprintf("Item movido: %s (%d → %d)", label, from, to)),
	})
}

func (i *Inventory) validateItem(f ItemForm) (string, int, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return "", 0, invalid("name", "Por favor completa los datos")
	}
	qty, err := PositiveInt("quantity", f.Quantity, "Por favor completa los datos")
	if err != nil {
		return "", 0, err
	}
	return name, qty, nil
}

// itemMutation runs the shared give/drop/delete flow.
func (i *Inventory) itemMutation(event, verb string, f ItemForm, apply func(name string, qty int)) error {
	name, qty, err := i.validateItem(f)
	if err != nil {
		i.env.Dialogs.Alert(err.Error())
		return err
	}
	call := bridge.NewCall(event, name, qty).WithNotice(fmt.Sprintf("%s %dx %s (Dev Mode)", verb, qty, name))
	return i.env.Run(Mutation{
		Apply:  func() { apply(name, qty); i.changed() },
		Emit:   &call,
		Record: i.entry(fmt.Sprintf("%s: %dx %s", verb, qty, name)),
	})
}

// Give adds qty of an item, stacking onto an existing stack or taking the
// first free slot.
func (i *Inventory) Give(f ItemForm) error {
	return i.itemMutation(model.EvInventoryGive, "Item dado", f, func(name string, qty int) {
		if n := i.indexByName(name); n >= 0 {
			i.items[n].Count += qty
			i.items[n].TotalWeight = i.items[n].Weight * i.items[n].Count
			return
		}
		if slot := i.freeSlot(); slot > 0 {
			i.items = append(i.items, model.NewSlot(name, qty, slot))
		}
	})
}

// Drop removes qty of an item from the player to the ground.
func (i *Inventory) Drop(f ItemForm) error {
	return i.itemMutation(model.EvInventoryDrop, "Item soltado", f, i.remove)
}

// Delete destroys qty of an item.
func (i *Inventory) Delete(f ItemForm) error {
	return i.itemMutation(model.EvInventoryDelete, "Item eliminado", f, i.remove)
}

// remove decrements a stack, dropping it at zero. Unknown items are left
// to the host.
func (i *Inventory) remove(name string, qty int) {
	n := i.indexByName(name)
	if n < 0 {
		return
	}
	i.items[n].Count -= qty
	if i.items[n].Count <= 0 {
		i.items = append(i.items[:n], i.items[n+1:]...)
		return
	}
	i.items[n].TotalWeight = i.items[n].Weight * i.items[n].Count
}

// Clear empties the whole inventory after confirmation.
func (i *Inventory) Clear() error {
	call := bridge.NewCall(model.EvInventoryClear).WithNotice(fmt.Sprintf("Inventario de %s borrado (Dev Mode)", i.playerName))
	return i.env.Run(Mutation{
		Confirm: &Confirmation{
			Title:       "Borrar inventario",
			Description: "¿Estás seguro de que deseas borrar TODO el inventario?",
			Dangerous:   true,
		},
		Apply:  func() { i.items = nil; i.changed() },
		Emit:   &call,
		Record: i.entry("Inventario borrado"),
	})
}

// ImportJSON replaces the local grid with a JSON array of slots. It is a
// local edit only; nothing is sent to the host.
func (i *Inventory) ImportJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		err = invalid("json", "JSON inválido")
		i.env.Dialogs.Alert(err.Error())
		return err
	}
	if _, ok := raw.([]any); !ok {
		err := invalid("json", "El JSON debe ser un array")
		i.env.Dialogs.Alert(err.Error())
		return err
	}
	var items []model.InventorySlot
	if err := json.Unmarshal(data, &items); err != nil {
		err = invalid("json", "JSON inválido")
		i.env.Dialogs.Alert(err.Error())
		return err
	}
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		var err error
		switch {
		case it.Slot < 1 || it.Slot > model.InventorySlots:
			err = invalid("json", "Slot fuera de rango: %d", it.Slot)
		case seen[it.Slot]:
			err = invalid("json", "Slot duplicado: %d", it.Slot)
		}
		if err != nil {
			i.env.Dialogs.Alert(err.Error())
			return err
		}
		seen[it.Slot] = true
	}
	for n := range items {
		if items[n].Label == "" {
			items[n].Label = items[n].Name
		}
		items[n].TotalWeight = items[n].Weight * items[n].Count
	}
	i.items = items
	i.changed()
	return nil
}
