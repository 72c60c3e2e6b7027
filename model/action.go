package model

import "time"

// AdminAction is one button of the actions modal.
type AdminAction struct {
	ID       string `json:"id"`
	Emoji    string `json:"emoji"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}

// DefaultActions is the catalog used until the host pushes its own.
func DefaultActions() []AdminAction {
	return []AdminAction{
		{ID: "player:bring", Emoji: "🔗", Label: "Traer", Category: "movement"},
		{ID: "player:goTo", Emoji: "🚀", Label: "Ir a Jugador", Category: "movement"},
		{ID: "player:heal", Emoji: "💚", Label: "Sanar", Category: "system"},
		{ID: "player:freeze", Emoji: "❄️", Label: "Congelar", Category: "system"},
		{ID: "player:slap", Emoji: "👋", Label: "Golpear", Category: "damage"},
		{ID: "player:burn", Emoji: "🔥", Label: "Quemar", Category: "damage"},
		{ID: "player:electrocute", Emoji: "⚡", Label: "Electrocutar", Category: "damage"},
		{ID: "player:kill", Emoji: "💀", Label: "Matar", Category: "damage"},
	}
}

// ActivityType classifies ledger entries.
type ActivityType string

const (
	ActivityMessage   ActivityType = "message"
	ActivitySuspend   ActivityType = "suspend"
	ActivityBan       ActivityType = "ban"
	ActivitySpectate  ActivityType = "spectate"
	ActivityBroadcast ActivityType = "broadcast"
	ActivityAction    ActivityType = "action"
	ActivityHeal      ActivityType = "heal"
	ActivityKill      ActivityType = "kill"
	ActivityFreeze    ActivityType = "freeze"
	ActivityInventory ActivityType = "inventory"
)

// ActivityEntry is one line of the operator's audit feed.
type ActivityEntry struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Action      string       `json:"action"`
	Timestamp   time.Time    `json:"timestamp"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
	SubjectID   string       `json:"playerId,omitempty"`
	SubjectName string       `json:"playerName,omitempty"`
}
