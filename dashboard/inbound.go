package dashboard

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/puyokura/nuiadmin/model"
)

// Router applies host pushes to the views. Every handled push replaces
// local state wholesale; nothing is merged.
type Router struct {
	Actions *Actions
	Tickets *Tickets
	Logger  *log.Logger
}

// Handle applies ev. Unknown pushes are logged and ignored.
func (r *Router) Handle(ev model.Event) error {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	if ev.Type != model.EventPush {
		logger.Printf("inbound: ignoring %s event %q", ev.Type, ev.Name)
		return nil
	}

	switch ev.Name {
	case model.PushActions:
		var actions []model.AdminAction
		if err := json.Unmarshal(ev.Payload, &actions); err != nil {
			return fmt.Errorf("decode %s: %w", ev.Name, err)
		}
		r.Actions.Replace(actions)
	case model.PushTickets:
		var tickets []model.Ticket
		if err := json.Unmarshal(ev.Payload, &tickets); err != nil {
			return fmt.Errorf("decode %s: %w", ev.Name, err)
		}
		r.Tickets.Replace(tickets)
	case model.PushJobs, model.PushGangs:
		// Jobs and gangs stay local; see DESIGN.md.
		logger.Printf("inbound: %s not subscribed", ev.Name)
	default:
		logger.Printf("inbound: unknown push %q", ev.Name)
	}
	return nil
}
