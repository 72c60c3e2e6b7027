package modals

import (
	"testing"

	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenThenCloseRestoresEmptySlot(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			r := NewRegistry()
			initial := r.State(k)

			r.Open(k, "P-0001", "Jugador1")
			require.True(t, r.IsOpen(k))

			r.Close(k)
			assert.Equal(t, initial, r.State(k))

			r.Close(k)
			assert.Equal(t, initial, r.State(k))
		})
	}
}

func TestKindsAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.OpenInventory("P-0001", "Jugador1", model.MockInventories()["P-0001"])
	r.Open(Actions, "P-0002", "Jugador2")

	assert.Equal(t, []Kind{Inventory, Actions}, r.OpenKinds())

	r.Close(Actions)
	inv := r.State(Inventory)
	assert.True(t, inv.IsOpen)
	assert.Equal(t, "P-0001", inv.SubjectID)
	assert.Len(t, inv.Items, 6)
}

func TestOpenOverwritesPreviousSubject(t *testing.T) {
	r := NewRegistry()
	r.OpenInventory("P-0001", "Jugador1", model.MockInventories()["P-0001"])
	r.Open(Inventory, "P-0002", "Jugador2")

	s := r.State(Inventory)
	assert.Equal(t, "P-0002", s.SubjectID)
	assert.Equal(t, "Jugador2", s.SubjectName)
	assert.Nil(t, s.Items)
}

func TestOpenInventoryCopiesItems(t *testing.T) {
	items := []model.InventorySlot{model.NewSlot("water", 1, 1)}
	r := NewRegistry()
	r.OpenInventory("P-0006", "Jugador6", items)

	items[0].Count = 99
	assert.Equal(t, 1, r.State(Inventory).Items[0].Count)

	got := r.State(Inventory)
	got.Items[0].Count = 42
	assert.Equal(t, 1, r.State(Inventory).Items[0].Count)
}

func TestOnChange(t *testing.T) {
	r := NewRegistry()
	var seen []Kind
	r.OnChange(func(k Kind, s State) { seen = append(seen, k) })
	r.Open(Ban, "P-0004", "Jugador4")
	r.Close(Ban)
	assert.Equal(t, []Kind{Ban, Ban}, seen)
}

func TestDashboardVisibility(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.DashboardVisible())

	r.Minimize()
	assert.False(t, r.DashboardVisible())
	assert.False(t, r.DashboardClosed())

	r.Restore()
	assert.True(t, r.DashboardVisible())

	r.CloseDashboard()
	assert.False(t, r.DashboardVisible())
	assert.True(t, r.DashboardClosed())
}
