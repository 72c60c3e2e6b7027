package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/model"
)

// OrgForm is the raw input of the create/edit job or gang dialog.
type OrgForm struct {
	Name        string
	Label       string
	Territory   string
	Color       string
	Status      string
	Description string
	Leader      string
	PaymentRate string
}

// MemberForm is the raw input of the add-member dialog.
type MemberForm struct {
	PlayerID   string
	PlayerName string
	Rank       string
	Salary     string
}

// Tier is a display bucket for reputation and treasury values.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
	TierTop
)

func ReputationTier(rep int) Tier {
	switch {
	case rep >= 9000:
		return TierTop
	case rep >= 8000:
		return TierHigh
	case rep >= 7000:
		return TierMid
	}
	return TierLow
}

func TreasuryTier(t int64) Tier {
	switch {
	case t >= 600000:
		return TierTop
	case t >= 400000:
		return TierMid
	}
	return TierLow
}

type orgsKey struct {
	search  string
	version int
}

// Orgs is the jobs tab or the gangs tab.
type Orgs struct {
	env     *Env
	kind    model.OrgKind
	list    []model.Organization
	members map[string][]model.Member

	Search  string
	version int
	visible memo[orgsKey, []model.Organization]
}

func NewJobs(env *Env) *Orgs {
	return &Orgs{env: env, kind: model.OrgJob, list: model.MockJobs(), members: map[string][]model.Member{}}
}

func NewGangs(env *Env) *Orgs {
	return &Orgs{env: env, kind: model.OrgGang, list: model.MockGangs(), members: map[string][]model.Member{}}
}

func (o *Orgs) Kind() model.OrgKind { return o.kind }

func (o *Orgs) touch() { o.version++ }

// Visible filters by search: jobs on name and territory, gangs on name,
// leader and territory.
func (o *Orgs) Visible() []model.Organization {
	return o.visible.get(orgsKey{o.Search, o.version}, func() []model.Organization {
		out := make([]model.Organization, 0, len(o.list))
		for _, org := range o.list {
			match := containsFold(org.Name, o.Search) || containsFold(org.Territory, o.Search)
			if o.kind == model.OrgGang {
				match = match || containsFold(org.Leader, o.Search)
			}
			if match {
				out = append(out, org)
			}
		}
		return out
	})
}

func (o *Orgs) Get(id string) (model.Organization, bool) {
	if n := o.index(id); n >= 0 {
		return o.list[n], true
	}
	return model.Organization{}, false
}

func (o *Orgs) index(id string) int {
	for n, org := range o.list {
		if org.ID == id {
			return n
		}
	}
	return -1
}

func (o *Orgs) ActiveCount() int {
	n := 0
	for _, org := range o.list {
		if org.Status == model.OrgActive {
			n++
		}
	}
	return n
}

func (o *Orgs) validate(f OrgForm) (float64, error) {
	if err := First(
		Required("name", f.Name, "El nombre es obligatorio"),
		Required("label", f.Label, "La etiqueta es obligatoria"),
		Required("territory", f.Territory, "El territorio es obligatorio"),
	); err != nil {
		return 0, err
	}
	if o.kind == model.OrgJob {
		return OptionalNonNegative("paymentRate", f.PaymentRate, "La tasa de pago debe ser un número positivo")
	}
	return 0, nil
}

func (o *Orgs) status(raw string) model.OrgStatus {
	switch model.OrgStatus(raw) {
	case model.OrgActive:
		return model.OrgActive
	case model.OrgInactive, model.OrgDefeated:
		return model.Organization{Kind: o.kind}.InactiveStatus()
	}
	return model.OrgActive
}

func (o *Orgs) recordEntry(action string, org model.Organization) *model.ActivityEntry {
	return &model.ActivityEntry{Type: model.ActivityAction, Action: action, SubjectID: org.ID, SubjectName: org.Label}
}

// Create adds a new organization with a client-assigned id and returns it.
func (o *Orgs) Create(f OrgForm) (string, error) {
	rate, err := o.validate(f)
	if err != nil {
		o.env.Dialogs.Alert(err.Error())
		return "", err
	}
	color := f.Color
	if color == "" {
		color = model.OrgColors[0]
	}
	org := model.Organization{
		ID:          fmt.Sprintf("%s_%d", o.kind, o.env.Now().UnixMilli()),
		Kind:        o.kind,
		Name:        strings.TrimSpace(f.Name),
		Label:       strings.TrimSpace(f.Label),
		Territory:   strings.TrimSpace(f.Territory),
		Color:       color,
		Status:      o.status(f.Status),
		Description: f.Description,
		Leader:      f.Leader,
		PaymentRate: rate,
	}
	if o.kind == model.OrgJob {
		org.Level = 1
	}
	call := bridge.NewCall(model.OrgEvent(o.kind, "create"), org)

	err = o.env.Run(Mutation{
		Apply:  func() { o.list = append(o.list, org); o.touch() },
		Emit:   &call,
		Record: o.recordEntry(fmt.Sprintf("%s creado: %s", o.noun(), org.Label), org),
	})
	return org.ID, err
}

// Update replaces an organization's editable fields. The name is fixed
// once created.
func (o *Orgs) Update(id string, f OrgForm) error {
	n := o.index(id)
	if n < 0 {
		return fmt.Errorf("%s %s not found", o.kind, id)
	}
	f.Name = o.list[n].Name
	rate, err := o.validate(f)
	if err != nil {
		o.env.Dialogs.Alert(err.Error())
		return err
	}

	next := o.list[n]
	next.Label = strings.TrimSpace(f.Label)
	next.Territory = strings.TrimSpace(f.Territory)
	if f.Color != "" {
		next.Color = f.Color
	}
	if f.Status != "" {
		next.Status = o.status(f.Status)
	}
	next.Description = f.Description
	if o.kind == model.OrgGang {
		next.Leader = f.Leader
	} else {
		next.PaymentRate = rate
	}
	call := bridge.NewCall(model.OrgEvent(o.kind, "update"), next)

	return o.env.Run(Mutation{
		Apply:  func() { o.replace(next) },
		Emit:   &call,
		Record: o.recordEntry(fmt.Sprintf("%s actualizado: %s", o.noun(), next.Label), next),
	})
}

func (o *Orgs) replace(org model.Organization) {
	if n := o.index(org.ID); n >= 0 {
		o.list[n] = org
		o.touch()
	}
}

// Delete removes an organization after confirmation.
func (o *Orgs) Delete(id string) error {
	org, ok := o.Get(id)
	if !ok {
		return fmt.Errorf("%s %s not found", o.kind, id)
	}
	call := bridge.NewCall(model.OrgEvent(o.kind, "delete"), id)
	return o.env.Run(Mutation{
		Confirm: &Confirmation{
			Title:       fmt.Sprintf("Eliminar %s", org.Label),
			Description: "Se eliminará permanentemente junto con su lista de miembros.",
			Dangerous:   true,
		},
		Apply: func() {
			if n := o.index(id); n >= 0 {
				o.list = append(o.list[:n], o.list[n+1:]...)
				delete(o.members, id)
				o.touch()
			}
		},
		Emit:   &call,
		Record: o.recordEntry(fmt.Sprintf("%s eliminado: %s", o.noun(), org.Label), org),
	})
}

// ToggleStatus flips between active and the kind's inactive status.
func (o *Orgs) ToggleStatus(id string) error {
	org, ok := o.Get(id)
	if !ok {
		return fmt.Errorf("%s %s not found", o.kind, id)
	}
	if org.Status == model.OrgActive {
		org.Status = org.InactiveStatus()
	} else {
		org.Status = model.OrgActive
	}
	call := bridge.NewCall(model.OrgEvent(o.kind, "update"), org)
	return o.env.Run(Mutation{
		Apply:  func() { o.replace(org) },
		Emit:   &call,
		Record: o.recordEntry(fmt.Sprintf("%s %s: %s", o.noun(), org.Status, org.Label), org),
	})
}

func (o *Orgs) Members(orgID string) []model.Member {
	return append([]model.Member(nil), o.members[orgID]...)
}

// AddMember puts a player on an organization's roster.
func (o *Orgs) AddMember(orgID string, f MemberForm) error {
	org, ok := o.Get(orgID)
	if !ok {
		return fmt.Errorf("%s %s not found", o.kind, orgID)
	}
	var salary int64
	validate := func() error {
		if err := First(
			Required("playerId", f.PlayerID, "El ID del jugador es obligatorio"),
			Required("playerName", f.PlayerName, "El nombre del jugador es obligatorio"),
		); err != nil {
			return err
		}
		for _, m := range o.members[orgID] {
			if m.PlayerID == strings.TrimSpace(f.PlayerID) {
				return invalid("playerId", "%s ya es miembro", f.PlayerName)
			}
		}
		if o.kind == model.OrgJob && strings.TrimSpace(f.Salary) != "" {
			n, err := strconv.ParseInt(strings.TrimSpace(f.Salary), 10, 64)
			if err != nil || n < 0 {
				return invalid("salary", "El salario debe ser un número positivo")
			}
			salary = n
		}
		return nil
	}
	if err := validate(); err != nil {
		o.env.Dialogs.Alert(err.Error())
		return err
	}

	m := model.Member{PlayerID: strings.TrimSpace(f.PlayerID), PlayerName: strings.TrimSpace(f.PlayerName), Rank: f.Rank, Salary: salary}
	call := bridge.NewCall(model.OrgEvent(o.kind, "addMember"), orgID, m)
	return o.env.Run(Mutation{
		Apply: func() {
			o.members[orgID] = append(o.members[orgID], m)
			if n := o.index(orgID); n >= 0 {
				o.list[n].Members++
				o.touch()
			}
		},
		Emit:   &call,
		Record: o.recordEntry(fmt.Sprintf("Miembro añadido a %s: %s", org.Label, m.PlayerName), org),
	})
}

// RemoveMember takes a player off an organization's roster.
func (o *Orgs) RemoveMember(orgID, playerID string) error {
	org, ok := o.Get(orgID)
	if !ok {
		return fmt.Errorf("%s %s not found", o.kind, orgID)
	}
	idx := -1
	for n, m := range o.members[orgID] {
		if m.PlayerID == playerID {
			idx = n
		}
	}
	call := bridge.NewCall(model.OrgEvent(o.kind, "removeMember"), orgID, playerID)
	return o.env.Run(Mutation{
		Validate: func() error {
			if idx < 0 {
				return invalid("playerId", "%s no es miembro", playerID)
			}
			return nil
		},
		Apply: func() {
			ms := o.members[orgID]
			o.members[orgID] = append(ms[:idx], ms[idx+1:]...)
			if n := o.index(orgID); n >= 0 && o.list[n].Members > 0 {
				o.list[n].Members--
				o.touch()
			}
		},
		Emit:   &call,
		Record: o.recordEntry(fmt.Sprintf("Miembro eliminado de %s: %s", org.Label, playerID), org),
	})
}

func (o *Orgs) noun() string {
	if o.kind == model.OrgGang {
		return "Banda"
	}
	return "Trabajo"
}
