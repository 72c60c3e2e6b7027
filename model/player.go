package model

// Presence of a player on the game server.
type Presence string

const (
	Online  Presence = "online"
	Offline Presence = "offline"
)

// AccountStatus of a player.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusBanned    AccountStatus = "banned"
	StatusSuspended AccountStatus = "suspended"
)

// Currency is one named balance of a player.
type Currency struct {
	Name   string `json:"name"`
	Key    string `json:"key"`
	Amount int64  `json:"amount"`
	Icon   string `json:"icon"`
}

// Player is a roster entry as shown on the players section.
type Player struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Band          string        `json:"band"`
	Level         int           `json:"level"`
	Experience    int           `json:"experience"`
	Reputation    int           `json:"reputation"`
	Money         int64         `json:"money"`
	Currencies    []Currency    `json:"currency"`
	Kills         int           `json:"kills"`
	Deaths        int           `json:"deaths"`
	Missions      int           `json:"missions"`
	PlaytimeHours int           `json:"playtimeHours"`
	Presence      Presence      `json:"presence"`
	Location      string        `json:"location"`
	AccountStatus AccountStatus `json:"accountStatus"`
}

// KD returns the kill/death ratio, or the kill count when deaths is zero.
func (p Player) KD() float64 {
	if p.Deaths == 0 {
		return float64(p.Kills)
	}
	return float64(p.Kills) / float64(p.Deaths)
}

func cur(name, key string, amount int64, icon string) Currency {
	return Currency{Name: name, Key: key, Amount: amount, Icon: icon}
}

// MockPlayers returns the seeded roster.
func MockPlayers() []Player {
	return []Player{
		{
			ID: "P-0001", Name: "Jugador1", Band: "VENGEFUL SPIRIT",
			Level: 45, Experience: 8750, Money: 125000,
			Currencies: []Currency{
				cur("Efectivo", "cash", 50000, "💵"),
				cur("Banco", "bank", 75000, "🏦"),
				cur("Cripto", "crypto", 12500, "₿"),
			},
			Kills: 156, Deaths: 23, Missions: 47, PlaytimeHours: 284, Reputation: 8500,
			Presence: Online, Location: "Paleto Bay", AccountStatus: StatusActive,
		},
		{
			ID: "P-0002", Name: "Jugador2", Band: "OBSIDIAN SENTINEL",
			Level: 38, Experience: 6200, Money: 87000,
			Currencies: []Currency{
				cur("Efectivo", "cash", 35000, "💵"),
				cur("Banco", "bank", 52000, "🏦"),
			},
			Kills: 98, Deaths: 45, Missions: 32, PlaytimeHours: 156, Reputation: 5200,
			Presence: Online, Location: "Downtown", AccountStatus: StatusActive,
		},
		{
			ID: "P-0003", Name: "Jugador3", Band: "GHOSTLY FURY",
			Level: 52, Experience: 12500, Money: 250000,
			Currencies: []Currency{
				cur("Efectivo", "cash", 100000, "💵"),
				cur("Banco", "bank", 150000, "🏦"),
				cur("Cripto", "crypto", 45000, "₿"),
				cur("Oro", "gold", 25000, "🏆"),
			},
			Kills: 234, Deaths: 18, Missions: 63, PlaytimeHours: 412, Reputation: 12300,
			Presence: Online, Location: "Sandy Shores", AccountStatus: StatusActive,
		},
		{
			ID: "P-0004", Name: "Jugador4", Band: "CURSED REVENANT",
			Level: 28, Experience: 3450, Money: 45000,
			Currencies: []Currency{
				cur("Efectivo", "cash", 20000, "💵"),
				cur("Banco", "bank", 25000, "🏦"),
			},
			Kills: 45, Deaths: 67, Missions: 18, PlaytimeHours: 78, Reputation: 2100,
			Presence: Offline, Location: "Vinewood", AccountStatus: StatusBanned,
		},
		{
			ID: "P-0005", Name: "Jugador5", Band: "VENOMOUS SHADE",
			Level: 42, Experience: 7800, Money: 156000,
			Currencies: []Currency{
				cur("Efectivo", "cash", 60000, "💵"),
				cur("Banco", "bank", 96000, "🏦"),
			},
			Kills: 129, Deaths: 31, Missions: 41, PlaytimeHours: 234, Reputation: 7600,
			Presence: Offline, Location: "Pacific Bluffs", AccountStatus: StatusSuspended,
		},
		{
			ID: "P-0006", Name: "Jugador6", Band: "MYSTIC ENIGMA",
			Level: 15, Experience: 1200, Money: 12000,
			Currencies: []Currency{
				cur("Efectivo", "cash", 8000, "💵"),
				cur("Banco", "bank", 4000, "🏦"),
			},
			Kills: 12, Deaths: 34, Missions: 5, PlaytimeHours: 24, Reputation: 800,
			Presence: Online, Location: "Pillbox Hill", AccountStatus: StatusActive,
		},
	}
}
