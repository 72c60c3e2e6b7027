package dashboard

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/model"
)

// AdminAuthor signs every message the operator adds to a ticket.
const AdminAuthor = "ADMIN_ROOT"

type ticketsKey struct {
	search   string
	status   string
	priority string
	version  int
}

// Tickets is the support queue and the ticket detail dialog.
type Tickets struct {
	env  *Env
	list []model.Ticket

	Search   string
	Status   string
	Priority string
	selected string
	version  int
	visible  memo[ticketsKey, []model.Ticket]
}

func NewTickets(env *Env) *Tickets {
	return &Tickets{env: env, list: model.MockTickets(), Status: FilterAll, Priority: FilterAll}
}

// Visible filters by search over id, title and player name, then status and
// priority, and sorts critical first.
func (t *Tickets) Visible() []model.Ticket {
	key := ticketsKey{t.Search, t.Status, t.Priority, t.version}
	return t.visible.get(key, func() []model.Ticket {
		out := make([]model.Ticket, 0, len(t.list))
		for _, tk := range t.list {
			if t.Search != "" && !containsFold(tk.ID, t.Search) && !containsFold(tk.Title, t.Search) && !containsFold(tk.PlayerName, t.Search) {
				continue
			}
			if t.Status != "" && t.Status != FilterAll && string(tk.Status) != t.Status {
				continue
			}
			if t.Priority != "" && t.Priority != FilterAll && string(tk.Priority) != t.Priority {
				continue
			}
			out = append(out, tk.Clone())
		}
		sort.SliceStable(out, func(i, j int) bool {
			if a, b := out[i].Priority.Rank(), out[j].Priority.Rank(); a != b {
				return a > b
			}
			return out[i].ID < out[j].ID
		})
		return out
	})
}

func (t *Tickets) index(id string) int {
	for n, tk := range t.list {
		if tk.ID == id {
			return n
		}
	}
	return -1
}

func (t *Tickets) Get(id string) (model.Ticket, bool) {
	if n := t.index(id); n >= 0 {
		return t.list[n].Clone(), true
	}
	return model.Ticket{}, false
}

// Select opens a ticket's detail dialog; an empty id closes it.
func (t *Tickets) Select(id string) { t.selected = id }

func (t *Tickets) Selected() (model.Ticket, bool) {
	if t.selected == "" {
		return model.Ticket{}, false
	}
	return t.Get(t.selected)
}

// CountByStatus counts tickets per status.
func (t *Tickets) CountByStatus() map[model.TicketStatus]int {
	out := make(map[model.TicketStatus]int, len(model.TicketStatuses))
	for _, tk := range t.list {
		out[tk.Status]++
	}
	return out
}

// Replace installs the host's ticket list wholesale.
func (t *Tickets) Replace(list []model.Ticket) {
	t.list = make([]model.Ticket, len(list))
	for n, tk := range list {
		t.list[n] = tk.Clone()
	}
	t.version++
}

// Refresh asks the host for the current queue.
func (t *Tickets) Refresh() { t.env.Query(bridge.NewCall(model.EvTicketsGet)) }

func (t *Tickets) clock() string { return t.env.Now().Format("15:04") }

func (t *Tickets) appendMessage(id string, msg model.TicketMessage) {
	if n := t.index(id); n >= 0 {
		t.list[n].Messages = append(t.list[n].Messages, msg)
		t.list[n].UpdatedAt = t.env.Now().Format("02/01/2006 15:04")
		t.version++
	}
}

func (t *Tickets) mustGet(id string) (model.Ticket, error) {
	tk, ok := t.Get(id)
	if !ok {
		return tk, fmt.Errorf("ticket %s not found", id)
	}
	return tk, nil
}

// AddMessage posts an operator reply, optionally with an image.
func (t *Tickets) AddMessage(id, text, image string) error {
	tk, err := t.mustGet(id)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	kind := "text"
	var img any
	if image != "" {
		kind = "image"
		img = image
	}
	msg := model.TicketMessage{
		ID:        uuid.NewString(),
		Author:    AdminAuthor,
		Role:      model.RoleAdmin,
		Message:   text,
		Timestamp: t.clock(),
		Image:     image,
	}
	call := bridge.NewCall(model.EvTicketMessage, id, text, kind, img)

	return t.env.Run(Mutation{
		Validate: func() error {
			if text == "" && image == "" {
				return invalid("message", "Escribe un mensaje o adjunta una imagen")
			}
			if image != "" {
				return ValidateImageRef(image)
			}
			return nil
		},
		Apply:  func() { t.appendMessage(id, msg) },
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivityMessage, Action: fmt.Sprintf("Respuesta en %s", tk.ID), SubjectID: tk.PlayerID, SubjectName: tk.PlayerName},
	})
}

// InvitePlayer pulls another player into a ticket after confirmation.
func (t *Tickets) InvitePlayer(id, playerID, playerName string) error {
	tk, err := t.mustGet(id)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("📍 Invitó a @%s (ID: %s) al ticket", playerName, playerID)
	msg := model.TicketMessage{ID: uuid.NewString(), Author: AdminAuthor, Role: model.RoleAdmin, Message: text, Timestamp: t.clock()}
	call := bridge.NewCall(model.EvTicketInvite, id, playerID, playerName)

	return t.env.Run(Mutation{
		Validate: func() error {
			return First(
				Required("playerId", playerID, "Selecciona un jugador"),
				Required("playerName", playerName, "Selecciona un jugador"),
			)
		},
		Confirm: &Confirmation{
			Title:       "Invitar jugador",
			Description: fmt.Sprintf("¿Invitar a %s (ID: %s) al ticket %s?", playerName, playerID, tk.ID),
		},
		Apply:  func() { t.appendMessage(id, msg) },
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivityMessage, Action: fmt.Sprintf("%s invitado a %s", playerName, tk.ID), SubjectID: playerID, SubjectName: playerName},
	})
}

// UpdateStatus moves a ticket to s. Closing and resolving ask first.
func (t *Tickets) UpdateStatus(id string, s model.TicketStatus) error {
	tk, err := t.mustGet(id)
	if err != nil {
		return err
	}
	call := bridge.NewCall(model.EvTicketStatus, id, string(s))
	m := Mutation{
		Validate: func() error {
			for _, known := range model.TicketStatuses {
				if s == known {
					return nil
				}
			}
			return invalid("status", "Estado inválido: %s", s)
		},
		Apply: func() {
			if n := t.index(id); n >= 0 {
				t.list[n].Status = s
				t.list[n].UpdatedAt = t.env.Now().Format("02/01/2006 15:04")
				t.version++
			}
		},
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivityAction, Action: fmt.Sprintf("%s → %s", tk.ID, s), SubjectID: tk.PlayerID, SubjectName: tk.PlayerName},
	}
	if gated, dangerous := StatusNeedsConfirmation(s); gated {
		m.Confirm = &Confirmation{
			Title:       fmt.Sprintf("Cambiar %s a %s", tk.ID, s),
			Description: "El jugador dejará de poder responder en este ticket.",
			Dangerous:   dangerous,
		}
	}
	return t.env.Run(m)
}

// InviteCandidates filters players for the invite dialog by id or name,
// excluding the ticket's own author.
func InviteCandidates(players []model.Player, ticket model.Ticket, query string) []model.Player {
	var out []model.Player
	for _, p := range players {
		if p.ID == ticket.PlayerID {
			continue
		}
		if containsFold(p.ID, query) || containsFold(p.Name, query) {
			out = append(out, p)
		}
	}
	return out
}

// ValidateImageRef accepts http(s) URLs and inline image data URIs.
func ValidateImageRef(ref string) error {
	if strings.HasPrefix(ref, "data:image/") {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("image", "URL inválida")
	}
	return nil
}
