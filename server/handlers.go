package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/puyokura/nuiadmin/model"
)

// handleEvent applies one dashboard call. Every call lands in the audit
// log; the ones the host models get their own tables.
func (c *Client) handleEvent(ev model.Event) {
	if err := c.hub.store.Audit(c.operator, ev); err != nil {
		log.Printf("audit %s: %v", ev.Name, err)
	}
	if err := c.apply(ev); err != nil {
		log.Printf("%s from %s: %v", ev.Name, c.operator, err)
		return
	}
	log.Printf("%s from %s", ev.Name, c.operator)
}

func (c *Client) apply(ev model.Event) error {
	store := c.hub.store
	switch ev.Name {
	case model.EvTicketsGet:
		return c.pushTickets()
	case model.EvActionsGet:
		return c.pushActions()

	case model.EvPlayerBan, model.EvPlayerSuspend:
		var id, reason string
		var days int
		if err := firstErr(ev.Arg(0, &id), ev.Arg(1, &days), ev.Arg(2, &reason)); err != nil {
			return err
		}
		if ev.Name == model.EvPlayerBan {
			return store.Ban(id, days, reason)
		}
		return store.Suspend(id, days, reason)

	case model.EvTicketMessage:
		var id, text, kind string
		var image *string
		if err := firstErr(ev.Arg(0, &id), ev.Arg(1, &text), ev.Arg(2, &kind)); err != nil {
			return err
		}
		if len(ev.Args) > 3 {
			if err := ev.Arg(3, &image); err != nil {
				return err
			}
		}
		msg := model.TicketMessage{
			ID:        uuid.NewString(),
			Author:    c.operator,
			Role:      model.RoleAdmin,
			Message:   text,
			Timestamp: time.Now().Format("15:04"),
		}
		if image != nil {
			msg.Image = *image
		}
		return c.updateTicket(id, func(t *model.Ticket) { t.Messages = append(t.Messages, msg) })

	case model.EvTicketInvite:
		var id, playerID, playerName string
		if err := firstErr(ev.Arg(0, &id), ev.Arg(1, &playerID), ev.Arg(2, &playerName)); err != nil {
			return err
		}
		msg := model.TicketMessage{
			ID:        uuid.NewString(),
			Author:    "SYSTEM",
			Role:      model.RoleAdmin,
			Message:   fmt.Sprintf("%s (%s) se unió al ticket", playerName, playerID),
			Timestamp: time.Now().Format("15:04"),
		}
		return c.updateTicket(id, func(t *model.Ticket) { t.Messages = append(t.Messages, msg) })

	case model.EvTicketStatus:
		var id string
		var status model.TicketStatus
		if err := firstErr(ev.Arg(0, &id), ev.Arg(1, &status)); err != nil {
			return err
		}
		if !validStatus(status) {
			return fmt.Errorf("unknown status %q", status)
		}
		return c.updateTicket(id, func(t *model.Ticket) { t.Status = status })
	}
	// Everything else only needs the audit trail.
	return nil
}

func validStatus(s model.TicketStatus) bool {
	for _, v := range model.TicketStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// updateTicket changes a stored ticket and pushes the new queue to every
// dashboard.
func (c *Client) updateTicket(id string, fn func(*model.Ticket)) error {
	if err := c.hub.store.UpdateTicket(id, fn); err != nil {
		if errors.Is(err, ErrNoTicket) {
			return fmt.Errorf("%w: %s", err, id)
		}
		return err
	}
	return c.hub.PushTickets()
}

func (c *Client) pushTickets() error {
	ev, err := c.hub.ticketsEvent()
	if err != nil {
		return err
	}
	c.push(ev)
	return nil
}

func (c *Client) pushActions() error {
	ev, err := model.NewPush(model.PushActions, model.DefaultActions())
	if err != nil {
		return err
	}
	c.push(ev)
	return nil
}

func (h *Hub) ticketsEvent() (model.Event, error) {
	tickets, err := h.store.Tickets()
	if err != nil {
		return model.Event{}, err
	}
	return model.NewPush(model.PushTickets, tickets)
}

// PushTickets sends the stored ticket queue to every dashboard.
func (h *Hub) PushTickets() error {
	ev, err := h.ticketsEvent()
	if err != nil {
		return err
	}
	h.Push(ev)
	return nil
}

// PushActions sends the action catalog to every dashboard.
func (h *Hub) PushActions() error {
	ev, err := model.NewPush(model.PushActions, model.DefaultActions())
	if err != nil {
		return err
	}
	h.Push(ev)
	return nil
}
