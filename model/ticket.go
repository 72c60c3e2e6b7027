package model

// TicketStatus of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// TicketStatuses in display order.
var TicketStatuses = []TicketStatus{TicketOpen, TicketInProgress, TicketResolved, TicketClosed}

// TicketPriority of a support ticket.
type TicketPriority string

const (
	PriorityLow      TicketPriority = "low"
	PriorityMedium   TicketPriority = "medium"
	PriorityHigh     TicketPriority = "high"
	PriorityCritical TicketPriority = "critical"
)

// Rank orders priorities, critical highest.
func (p TicketPriority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	}
	return 0
}

type MessageRole string

const (
	RoleUser  MessageRole = "user"
	RoleAdmin MessageRole = "admin"
)

// TicketMessage is one line of a ticket conversation.
type TicketMessage struct {
	ID        string      `json:"id"`
	Author    string      `json:"author"`
	Role      MessageRole `json:"role"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	Image     string      `json:"image,omitempty"`
}

// Ticket is a player support request.
type Ticket struct {
	ID          string          `json:"id"`
	PlayerID    string          `json:"playerId"`
	PlayerName  string          `json:"playerName"`
	PlayerBand  string          `json:"playerBand"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    TicketPriority  `json:"priority"`
	Status      TicketStatus    `json:"status"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
	Messages    []TicketMessage `json:"messages"`
}

// Clone returns a deep copy of the ticket.
func (t Ticket) Clone() Ticket {
	t.Messages = append([]TicketMessage(nil), t.Messages...)
	return t
}

// MockTickets returns the seeded support queue.
func MockTickets() []Ticket {
	return []Ticket{
		{
			ID: "TK-001", PlayerID: "G-078W", PlayerName: "VENGEFUL SPIRIT", PlayerBand: "SHADOW SYNDICATE",
			Title:       "Problema con la banda",
			Description: "No puedo acceder a los fondos de la banda, me sale error de permisos.",
			Priority:    PriorityHigh, Status: TicketOpen,
			CreatedAt: "03/01/2026 14:32", UpdatedAt: "03/01/2026 14:32",
			Messages: []TicketMessage{
				{ID: "1", Author: "G-078W", Role: RoleUser, Message: "No puedo acceder a los fondos de la banda, me sale error de permisos.", Timestamp: "14:32"},
			},
		},
		{
			ID: "TK-002", PlayerID: "G-079X", PlayerName: "OBSIDIAN SENTINEL", PlayerBand: "OBSIDIAN SENTINEL",
			Title:       "Reporte de jugador sospechoso",
			Description: "Sospecho que G-156K está usando hacks, tiene stats imposibles.",
			Priority:    PriorityCritical, Status: TicketInProgress,
			CreatedAt: "03/01/2026 13:15", UpdatedAt: "03/01/2026 14:20",
			Messages: []TicketMessage{
				{ID: "1", Author: "G-079X", Role: RoleUser, Message: "Sospecho que G-156K está usando hacks, tiene stats imposibles.", Timestamp: "13:15"},
				{ID: "2", Author: "ADMIN_SECURITY", Role: RoleAdmin, Message: "Gracias por el reporte. Estamos investigando la cuenta.", Timestamp: "13:45"},
			},
		},
		{
			ID: "TK-003", PlayerID: "G-080Y", PlayerName: "GHOSTLY FURY", PlayerBand: "CURSED REVENANT",
			Title:       "Bug en el servidor",
			Description: "Se me desconecta constantemente durante las misiones.",
			Priority:    PriorityMedium, Status: TicketOpen,
			CreatedAt: "03/01/2026 12:50", UpdatedAt: "03/01/2026 12:50",
			Messages: []TicketMessage{
				{ID: "1", Author: "G-080Y", Role: RoleUser, Message: "Se me desconecta constantemente durante las misiones.", Timestamp: "12:50"},
			},
		},
	}
}
