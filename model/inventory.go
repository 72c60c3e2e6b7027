package model

const (
	InventorySlots     = 50
	MaxInventoryWeight = 100000
	// Fractions of MaxInventoryWeight at which the weight bar changes colour.
	WeightWarning  = 0.6
	WeightCritical = 0.8
)

// InventorySlot is one occupied cell of a player's grid.
type InventorySlot struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Count       int    `json:"count"`
	Weight      int    `json:"weight"`
	Slot        int    `json:"slot"`
	TotalWeight int    `json:"totalWeight"`
}

// CatalogItem describes an item the host knows about.
type CatalogItem struct {
	Label  string
	Weight int
	Image  string
}

// ItemCatalog mirrors the host's item definitions.
var ItemCatalog = map[string]CatalogItem{
	"testburger":     {"Test Burger", 220, "burger_chicken.png"},
	"bandage":        {"Bandage", 115, "bandage.png"},
	"black_money":    {"Dirty Money", 0, "black_money.png"},
	"burger":         {"Burger", 220, "burger.png"},
	"sprunk":         {"Sprunk", 350, "sprunk.png"},
	"parachute":      {"Parachute", 8000, "parachute.png"},
	"garbage":        {"Garbage", 0, "garbage.png"},
	"paperbag":       {"Paper Bag", 1, "paperbag.png"},
	"identification": {"Identification", 0, "card_id.png"},
	"panties":        {"Knickers", 10, ""},
	"lockpick":       {"Lockpick", 160, "lockpick.png"},
	"phone":          {"Phone", 190, "phone.png"},
	"money":          {"Money", 0, "money.png"},
	"mustard":        {"Mustard", 500, "mustard.png"},
	"water":          {"Water", 500, "water.png"},
	"radio":          {"Radio", 1000, "radio.png"},
	"armour":         {"Bulletproof Vest", 3000, "armour.png"},
	"clothing":       {"Clothing", 0, ""},
	"mastercard":     {"Fleeca Card", 10, "card_bank.png"},
	"scrapmetal":     {"Scrap Metal", 80, "scrapmetal.png"},
}

// NewSlot builds a slot for a catalog item, falling back to the raw name
// for unknown items.
func NewSlot(name string, count, slot int) InventorySlot {
	item, ok := ItemCatalog[name]
	if !ok {
		item = CatalogItem{Label: name}
	}
	return InventorySlot{
		Name:        name,
		Label:       item.Label,
		Count:       count,
		Weight:      item.Weight,
		Slot:        slot,
		TotalWeight: item.Weight * count,
	}
}

// MockInventories returns per-player seeded inventories keyed by player id.
func MockInventories() map[string][]InventorySlot {
	return map[string][]InventorySlot{
		"P-0001": {
			NewSlot("money", 125000, 1), NewSlot("burger", 3, 2), NewSlot("water", 2, 3),
			NewSlot("phone", 1, 4), NewSlot("identification", 1, 5), NewSlot("lockpick", 5, 6),
		},
		"P-0002": {
			NewSlot("money", 87000, 1), NewSlot("radio", 1, 2), NewSlot("bandage", 4, 3),
			NewSlot("mastercard", 1, 4),
		},
		"P-0003": {
			NewSlot("money", 250000, 1), NewSlot("armour", 1, 2), NewSlot("phone", 1, 3),
			NewSlot("sprunk", 1, 4), NewSlot("lockpick", 10, 5),
		},
		"P-0004": {
			NewSlot("money", 45000, 1), NewSlot("burger", 1, 2),
		},
		"P-0005": {
			NewSlot("money", 156000, 1), NewSlot("radio", 2, 2), NewSlot("phone", 1, 3),
		},
		"P-0006": {
			NewSlot("money", 12000, 1), NewSlot("water", 1, 2), NewSlot("identification", 1, 3),
		},
	}
}
