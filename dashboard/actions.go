package dashboard

import (
	"fmt"

	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
)

// Actions is the admin-actions dialog: a host-provided catalog of things
// that can be done to a player.
type Actions struct {
	env     *Env
	catalog []model.AdminAction
}

func NewActions(env *Env) *Actions {
	return &Actions{env: env, catalog: model.DefaultActions()}
}

func (a *Actions) Catalog() []model.AdminAction {
	return append([]model.AdminAction(nil), a.catalog...)
}

// Replace installs the host's catalog wholesale.
func (a *Actions) Replace(actions []model.AdminAction) {
	a.catalog = append([]model.AdminAction(nil), actions...)
}

// Refresh asks the host for its current catalog.
func (a *Actions) Refresh() { a.env.Query(bridge.NewCall(model.EvActionsGet)) }

func (a *Actions) find(id string) (model.AdminAction, bool) {
	for _, act := range a.catalog {
		if act.ID == id {
			return act, true
		}
	}
	return model.AdminAction{}, false
}

func activityTypeFor(actionID string) model.ActivityType {
	switch actionID {
	case "player:heal", "heal":
		return model.ActivityHeal
	case "player:kill", "kill":
		return model.ActivityKill
	case "player:freeze", "freeze":
		return model.ActivityFreeze
	}
	return model.ActivityAction
}

// Trigger executes actionID against the actions dialog's subject. Dangerous
// actions wait for confirmation before anything is sent.
func (a *Actions) Trigger(actionID string) error {
	s, err := a.env.modalSubject(modals.Actions)
	if err != nil {
		return err
	}
	// Ids outside the catalog still go to the host; they log under the raw id.
	label, action := actionID, actionID
	if act, ok := a.find(actionID); ok {
		label = act.Label
		action = fmt.Sprintf("%s %s", act.Emoji, act.Label)
	}

	m := Mutation{
		Emit: &bridge.Call{
			Event:  model.EvActionExecute,
			Args:   []any{actionID, s.SubjectID},
			Notice: fmt.Sprintf("Acción: %s (Dev Mode)", actionID),
		},
		Record: &model.ActivityEntry{
			Type:        activityTypeFor(actionID),
			Action:      action,
			SubjectID:   s.SubjectID,
			SubjectName: s.SubjectName,
		},
		Close: []modals.Kind{modals.Actions},
	}
	if IsDangerous(actionID) {
		m.Confirm = &Confirmation{
			Title:       fmt.Sprintf("¿%s a %s?", label, s.SubjectName),
			Description: "Esta acción afecta directamente al jugador y no se puede deshacer.",
			Dangerous:   true,
		}
	}
	return a.env.Run(m)
}
