package model

type MissionType string
type MissionDifficulty string
type MissionStatus string

const (
	MissionDraft     MissionStatus = "draft"
	MissionActive    MissionStatus = "active"
	MissionCompleted MissionStatus = "completed"
	MissionArchived  MissionStatus = "archived"
)

// Coords is a world position.
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Reward struct {
	XP           int    `json:"xp"`
	Money        int64  `json:"money,omitempty"`
	ItemID       string `json:"itemId,omitempty"`
	ItemQuantity int    `json:"itemQuantity,omitempty"`
}

type Objective struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Target      string  `json:"target,omitempty"`
	Coordinates *Coords `json:"coordinates,omitempty"`
	Completed   bool    `json:"completed"`
}

type DialogueOption struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	NextNodeID    string `json:"nextNodeId,omitempty"`
	RequiresQuest string `json:"requiresQuest,omitempty"`
}

type DialogueNode struct {
	ID      string           `json:"id"`
	NPCName string           `json:"npcName"`
	Text    string           `json:"text"`
	Options []DialogueOption `json:"options,omitempty"`
}

type NPC struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Model       string         `json:"model"`
	Coordinates Coords         `json:"coordinates"`
	Heading     float64        `json:"heading"`
	Dialogue    []DialogueNode `json:"dialogue"`
	Behavior    string         `json:"behavior,omitempty"`
}

type PropInteraction struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Label        string `json:"label"`
	RequiresItem string `json:"requiresItem,omitempty"`
	TriggerEvent string `json:"triggerEvent,omitempty"`
}

type Prop struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Model        string            `json:"model"`
	Type         string            `json:"type"`
	Coordinates  Coords            `json:"coordinates"`
	Heading      float64           `json:"heading"`
	Scale        float64           `json:"scale,omitempty"`
	Interactions []PropInteraction `json:"interactions,omitempty"`
}

type VehicleSpawn struct {
	ID          string  `json:"id"`
	Model       string  `json:"model"`
	Coordinates Coords  `json:"coordinates"`
	Heading     float64 `json:"heading"`
	Locked      bool    `json:"locked"`
	NPCDriver   string  `json:"npcDriver,omitempty"`
}

type MinigameConfig struct {
	Type       string `json:"type"`
	Difficulty int    `json:"difficulty"`
	Reward     Reward `json:"reward"`
	TimeLimit  int    `json:"timeLimit,omitempty"`
}

type SecuritySystem struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Coordinates Coords  `json:"coordinates"`
	DisarmCode  string  `json:"disarmCode,omitempty"`
	Heading     float64 `json:"heading,omitempty"`
}

// Mission is the authored aggregate sent to the host.
type Mission struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Label           string            `json:"label"`
	Description     string            `json:"description"`
	Type            MissionType       `json:"type"`
	Difficulty      MissionDifficulty `json:"difficulty"`
	Status          MissionStatus     `json:"status"`
	StartLocation   Coords            `json:"startLocation"`
	Objectives      []Objective       `json:"objectives"`
	NPCs            []NPC             `json:"npcs"`
	Props           []Prop            `json:"props"`
	Vehicles        []VehicleSpawn    `json:"vehicles"`
	Minigames       []MinigameConfig  `json:"minigames"`
	SecuritySystems []SecuritySystem  `json:"securitySystems"`
	Rewards         Reward            `json:"rewards"`
	TimeLimit       int               `json:"timeLimit,omitempty"`
	MinLevel        int               `json:"minLevel,omitempty"`
	CompletionRate  int               `json:"completionRate"`
	Thumbnail       string            `json:"thumbnail,omitempty"`
	CreatedBy       string            `json:"createdBy"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}

// CatalogEntry is a selectable option in the mission builder.
type CatalogEntry struct {
	Value        string
	Label        string
	Icon         string
	Description  string
	RequiresItem string
}

var MissionTypes = []CatalogEntry{
	{Value: "heist", Label: "Heist / Robo", Icon: "💰"},
	{Value: "delivery", Label: "Delivery / Entrega", Icon: "📦"},
	{Value: "assassination", Label: "Assassination / Asesinato", Icon: "🎯"},
	{Value: "robbery", Label: "Robbery / Robo", Icon: "🏦"},
	{Value: "escort", Label: "Escort / Escolta", Icon: "👥"},
	{Value: "rescue", Label: "Rescue / Rescate", Icon: "🚨"},
	{Value: "sabotage", Label: "Sabotage / Sabotaje", Icon: "💣"},
}

var MissionDifficulties = []CatalogEntry{
	{Value: "easy", Label: "Fácil"},
	{Value: "medium", Label: "Media"},
	{Value: "hard", Label: "Difícil"},
	{Value: "extreme", Label: "Extrema"},
}

var NPCTypes = []CatalogEntry{
	{Value: "boss", Label: "Boss / Jefe", Icon: "👑"},
	{Value: "guard", Label: "Guard / Guardia", Icon: "🛡️"},
	{Value: "civilian", Label: "Civilian / Civil", Icon: "👤"},
	{Value: "criminal", Label: "Criminal / Criminal", Icon: "🦹"},
	{Value: "police", Label: "Police / Policía", Icon: "👮"},
}

var NPCBehaviors = []CatalogEntry{
	{Value: "patrol", Label: "Patrulla", Icon: "🚶"},
	{Value: "static", Label: "Estático", Icon: "🧍"},
	{Value: "aggressive", Label: "Agresivo", Icon: "⚔️"},
}

var PropTypes = []CatalogEntry{
	{Value: "furniture", Label: "Furniture / Muebles", Icon: "🪑"},
	{Value: "weapon", Label: "Weapon / Arma", Icon: "🔫"},
	{Value: "tool", Label: "Tool / Herramienta", Icon: "🔧"},
	{Value: "decoration", Label: "Decoration / Decoración", Icon: "🎨"},
	{Value: "electronic", Label: "Electronic / Electrónico", Icon: "📱"},
}

var InteractionTypes = []CatalogEntry{
	{Value: "talk", Label: "Talk / Hablar", Icon: "💬"},
	{Value: "take", Label: "Take / Coger", Icon: "✋"},
	{Value: "use", Label: "Use / Usar", Icon: "🔌"},
	{Value: "hack", Label: "Hack / Hackear", Icon: "💻"},
	{Value: "steal", Label: "Steal / Robar", Icon: "🚨"},
}

var MinigameTypes = []CatalogEntry{
	{Value: "lockpick", Label: "Lockpicking", Icon: "🔓", Description: "Abre cerraduras con una herramienta de hurto", RequiresItem: "lockpick"},
	{Value: "hack", Label: "Hacking", Icon: "💻", Description: "Hackea dispositivos electrónicos y sistemas", RequiresItem: "laptop"},
	{Value: "timerbomb", Label: "Timer Bomb", Icon: "⏲️", Description: "Coloca y desactiva bombas con temporizador", RequiresItem: "bomb"},
	{Value: "thermite", Label: "Thermite", Icon: "🔥", Description: "Quema cerraduras y estructuras metálicas", RequiresItem: "thermite"},
	{Value: "drilling", Label: "Drilling", Icon: "🪛", Description: "Perfora bóvedas y cajas de seguridad", RequiresItem: "drill"},
	{Value: "safecrack", Label: "Safecracking", Icon: "🔐", Description: "Abre cajas de seguridad", RequiresItem: "safekit"},
}

var SecuritySystems = []CatalogEntry{
	{Value: "laser", Label: "Laser System", Icon: "🔴", Description: "Sistema de láseres de seguridad"},
	{Value: "camera", Label: "Security Camera", Icon: "📹", Description: "Cámara de vigilancia"},
	{Value: "alarm", Label: "Alarm System", Icon: "🚨", Description: "Sistema de alarma"},
	{Value: "keypad", Label: "Keypad Lock", Icon: "🔢", Description: "Bloqueo con teclado numérico"},
}

var VehicleModels = []CatalogEntry{
	{Value: "adder", Label: "Adder", Description: "sports"},
	{Value: "banshee", Label: "Banshee", Description: "sports"},
	{Value: "buffalo", Label: "Buffalo", Description: "sports"},
	{Value: "tailgater", Label: "Tailgater", Description: "sedan"},
	{Value: "fugitive", Label: "Fugitive", Description: "sedan"},
	{Value: "bati801", Label: "Bati 801", Description: "motorcycle"},
	{Value: "pcj600", Label: "PCJ 600", Description: "motorcycle"},
	{Value: "granger", Label: "Granger", Description: "suv"},
	{Value: "patriot", Label: "Patriot", Description: "suv"},
	{Value: "rumpo", Label: "Rumpo", Description: "van"},
	{Value: "burrito", Label: "Burrito", Description: "van"},
}

var ObjectiveTypes = []CatalogEntry{
	{Value: "location", Label: "Go to Location", Icon: "📍"},
	{Value: "kill", Label: "Kill Target", Icon: "💀"},
	{Value: "collect", Label: "Collect Item", Icon: "📦"},
	{Value: "escort", Label: "Escort Person", Icon: "👥"},
	{Value: "hack", Label: "Hack System", Icon: "💻"},
	{Value: "destroy", Label: "Destroy Object", Icon: "💣"},
}

var RewardTypes = []CatalogEntry{
	{Value: "xp", Label: "Experience Points", Icon: "⭐"},
	{Value: "money", Label: "Money / Dinero", Icon: "💵"},
	{Value: "item", Label: "Item Reward", Icon: "🎁"},
	{Value: "reputation", Label: "Reputation", Icon: "🏆"},
}

// FindCatalog returns the entry with the given value.
func FindCatalog(entries []CatalogEntry, value string) (CatalogEntry, bool) {
	for _, e := range entries {
		if e.Value == value {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// MockMissions returns the seeded mission list.
func MockMissions() []Mission {
	return []Mission{
		{ID: "MISSION-001", Name: "jewelry_heist", Label: "Jewelry Store Heist", Type: "heist", Difficulty: "hard", Status: MissionActive, CompletionRate: 85, Rewards: Reward{XP: 5000, Money: 50000}},
		{ID: "MISSION-002", Name: "drug_delivery", Label: "Secure Delivery", Type: "delivery", Difficulty: "medium", Status: MissionActive, CompletionRate: 92, Rewards: Reward{XP: 2500, Money: 25000}},
		{ID: "MISSION-003", Name: "assassination", Label: "Executive Elimination", Type: "assassination", Difficulty: "extreme", Status: MissionDraft, CompletionRate: 0, Rewards: Reward{XP: 10000, Money: 100000}},
		{ID: "MISSION-004", Name: "warehouse_robbery", Label: "Warehouse Robbery", Type: "robbery", Difficulty: "medium", Status: MissionActive, CompletionRate: 78, Rewards: Reward{XP: 3000, Money: 30000}},
	}
}
