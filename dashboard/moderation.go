package dashboard

import (
	"fmt"
	"strings"

	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/modals"
	"github.com/puyokura/nuiadmin/model"
)

type BanType string

const (
	BanPermanent BanType = "permanent"
	BanTemporary BanType = "temporary"
)

const defaultReason = "Sin especificar"

// BanForm is the raw input of the ban dialog.
type BanForm struct {
	Type   BanType
	Days   string
	Reason string
}

// SuspendForm is the raw input of the suspend dialog.
type SuspendForm struct {
	Days   string
	Reason string
}

type MessageType string

const (
	MessageChat         MessageType = "chat"
	MessageNotification MessageType = "notification"
)

// MessageForm is the raw input of the direct message dialog.
type MessageForm struct {
	Type  MessageType
	Title string
	Body  string
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
)

var Severities = []Severity{SeveritySuccess, SeverityInfo, SeverityWarn, SeverityError}

// BroadcastForm is the raw input of the broadcast dialog.
type BroadcastForm struct {
	Message  string
	Severity Severity
}

const invalidDays = "Por favor ingresa una cantidad válida de días"

func (e *Env) modalSubject(kind modals.Kind) (modals.State, error) {
	s := e.Modals.State(kind)
	if !s.IsOpen || s.SubjectID == "" {
		return s, fmt.Errorf("%s dialog: %w", kind, ErrNoSubject)
	}
	return s, nil
}

func reasonOrDefault(r string) string {
	if strings.TrimSpace(r) == "" {
		return defaultReason
	}
	return r
}

// Ban submits the ban dialog for its open subject. Nothing is written back
// to the roster; the host owns account status.
func (p *Players) Ban(f BanForm) error {
	s, err := p.env.modalSubject(modals.Ban)
	if err != nil {
		return err
	}

	days := -1
	validate := func() error {
		if f.Type != BanTemporary {
			return nil
		}
		n, err := PositiveInt("days", f.Days, invalidDays)
		days = n
		return err
	}
	if err := validate(); err != nil {
		p.env.Dialogs.Alert(err.Error())
		return err
	}

	action := "Baneado permanentemente"
	if f.Type == BanTemporary {
		action = fmt.Sprintf("Baneado por %d días", days)
	}
	call := bridge.NewCall(model.EvPlayerBan, s.SubjectID, days, reasonOrDefault(f.Reason)).
		WithNotice(fmt.Sprintf("%s: %s (Dev Mode)", action, s.SubjectName))

	return p.env.Run(Mutation{
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivityBan, Action: action, Color: "#ef4444", SubjectID: s.SubjectID, SubjectName: s.SubjectName},
		Close:  []modals.Kind{modals.Ban},
	})
}

// Suspend submits the suspend dialog for its open subject.
func (p *Players) Suspend(f SuspendForm) error {
	s, err := p.env.modalSubject(modals.Suspend)
	if err != nil {
		return err
	}
	days, err := PositiveInt("days", f.Days, invalidDays)
	if err != nil {
		p.env.Dialogs.Alert(err.Error())
		return err
	}

	action := fmt.Sprintf("Suspendido por %d días", days)
	call := bridge.NewCall(model.EvPlayerSuspend, s.SubjectID, days, reasonOrDefault(f.Reason)).
		WithNotice(fmt.Sprintf("%s: %s (Dev Mode)", action, s.SubjectName))

	return p.env.Run(Mutation{
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivitySuspend, Action: action, Color: "#eab308", SubjectID: s.SubjectID, SubjectName: s.SubjectName},
		Close:  []modals.Kind{modals.Suspend},
	})
}

// SendMessage submits the message dialog for its open subject.
func (p *Players) SendMessage(f MessageForm) error {
	s, err := p.env.modalSubject(modals.Message)
	if err != nil {
		return err
	}
	if f.Type != MessageNotification {
		f.Type = MessageChat
	}
	title := strings.TrimSpace(f.Title)
	if title == "" {
		title = "Sistema"
	}

	call := bridge.NewCall(model.EvPlayerMessage, s.SubjectID, string(f.Type), title, f.Body).
		WithNotice(fmt.Sprintf("Mensaje a %s: %s (Dev Mode)", s.SubjectName, truncate(f.Body, 50)))
	kind := "chat"
	if f.Type == MessageNotification {
		kind = "notificación"
	}

	return p.env.Run(Mutation{
		Validate: func() error { return Required("body", f.Body, "Por favor escribe un mensaje") },
		Emit:     &call,
		Record:   &model.ActivityEntry{Type: model.ActivityMessage, Action: fmt.Sprintf("Mensaje %s enviado", kind), Color: "#f97316", SubjectID: s.SubjectID, SubjectName: s.SubjectName},
		Close:    []modals.Kind{modals.Message},
	})
}

// Broadcast sends a server-wide announcement.
func (p *Players) Broadcast(f BroadcastForm) error {
	if f.Severity == "" {
		f.Severity = SeverityInfo
	}
	call := bridge.NewCall(model.EvBroadcast, f.Message, string(f.Severity)).
		WithNotice(fmt.Sprintf("Broadcast [%s]: %s (Dev Mode)", f.Severity, truncate(f.Message, 50)))

	return p.env.Run(Mutation{
		Validate: func() error { return Required("message", f.Message, "Por favor escribe un mensaje") },
		Emit:     &call,
		Record:   &model.ActivityEntry{Type: model.ActivityBroadcast, Action: fmt.Sprintf("Broadcast enviado: %q", truncate(f.Message, 50))},
		Close:    []modals.Kind{modals.Broadcast},
	})
}
