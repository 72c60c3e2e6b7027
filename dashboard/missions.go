package dashboard

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/puyokura/nuiadmin/bridge"
	"github.com/puyokura/nuiadmin/model"
)

// MaxThumbnailBytes bounds mission thumbnails.
const MaxThumbnailBytes = 2 << 20

type WizardStep int

const (
	StepBasic WizardStep = iota
	StepNPCs
	StepProps
	StepObjectives
	StepMinigames
	StepSecurity
	StepReview
)

var stepNames = []string{"basic", "npcs", "props", "objectives", "minigames", "security", "review"}

func (s WizardStep) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// Wizard builds one mission draft step by step. No step validates beyond
// name and label, which are checked on save.
type Wizard struct {
	Draft   model.Mission
	step    WizardStep
	editing bool
}

func (w *Wizard) Step() WizardStep { return w.step }
func (w *Wizard) Editing() bool    { return w.editing }

// Next advances one step; it reports false on the review step.
func (w *Wizard) Next() bool {
	if w.step == StepReview {
		return false
	}
	w.step++
	return true
}

// Back returns one step; it reports false on the first step.
func (w *Wizard) Back() bool {
	if w.step == StepBasic {
		return false
	}
	w.step--
	return true
}

func (w *Wizard) AddNPC(name, npcType, modelName, behavior string, at model.Coords) string {
	id := uuid.NewString()
	w.Draft.NPCs = append(w.Draft.NPCs, model.NPC{ID: id, Name: name, Type: npcType, Model: modelName, Behavior: behavior, Coordinates: at})
	return id
}

// AddDialogue appends a dialogue node to an NPC's tree.
func (w *Wizard) AddDialogue(npcID, text string, options ...string) bool {
	for n := range w.Draft.NPCs {
		npc := &w.Draft.NPCs[n]
		if npc.ID != npcID {
			continue
		}
		node := model.DialogueNode{ID: uuid.NewString(), NPCName: npc.Name, Text: text}
		for _, o := range options {
			node.Options = append(node.Options, model.DialogueOption{ID: uuid.NewString(), Text: o})
		}
		npc.Dialogue = append(npc.Dialogue, node)
		return true
	}
	return false
}

func (w *Wizard) AddProp(name, propType, modelName string, at model.Coords, interactions ...model.PropInteraction) string {
	id := uuid.NewString()
	w.Draft.Props = append(w.Draft.Props, model.Prop{ID: id, Name: name, Type: propType, Model: modelName, Coordinates: at, Interactions: interactions})
	return id
}

func (w *Wizard) AddVehicle(modelName string, at model.Coords, locked bool) string {
	id := uuid.NewString()
	w.Draft.Vehicles = append(w.Draft.Vehicles, model.VehicleSpawn{ID: id, Model: modelName, Coordinates: at, Locked: locked})
	return id
}

func (w *Wizard) AddObjective(title, objType, description string) string {
	id := uuid.NewString()
	w.Draft.Objectives = append(w.Draft.Objectives, model.Objective{ID: id, Title: title, Type: objType, Description: description})
	return id
}

func (w *Wizard) AddMinigame(gameType string, difficulty int, reward model.Reward) {
	w.Draft.Minigames = append(w.Draft.Minigames, model.MinigameConfig{Type: gameType, Difficulty: difficulty, Reward: reward})
}

func (w *Wizard) AddSecurity(sysType string, at model.Coords, disarmCode string) string {
	id := uuid.NewString()
	w.Draft.SecuritySystems = append(w.Draft.SecuritySystems, model.SecuritySystem{ID: id, Type: sysType, Coordinates: at, DisarmCode: disarmCode})
	return id
}

// RequiredItems lists the items the draft's minigames need, in order and
// without repeats.
func (w *Wizard) RequiredItems() []string {
	seen := map[string]bool{}
	var out []string
	for _, mg := range w.Draft.Minigames {
		e, ok := model.FindCatalog(model.MinigameTypes, mg.Type)
		if !ok || e.RequiresItem == "" || seen[e.RequiresItem] {
			continue
		}
		seen[e.RequiresItem] = true
		out = append(out, e.RequiresItem)
	}
	return out
}

type missionsKey struct {
	search     string
	difficulty string
	status     string
	version    int
}

// Missions is the mission list and builder.
type Missions struct {
	env  *Env
	list []model.Mission

	Search     string
	Difficulty string
	Status     string
	version    int
	visible    memo[missionsKey, []model.Mission]
}

func NewMissions(env *Env) *Missions {
	return &Missions{env: env, list: model.MockMissions(), Difficulty: FilterAll, Status: FilterAll}
}

// Visible filters by search over name and label, then difficulty and
// status.
func (m *Missions) Visible() []model.Mission {
	key := missionsKey{m.Search, m.Difficulty, m.Status, m.version}
	return m.visible.get(key, func() []model.Mission {
		out := make([]model.Mission, 0, len(m.list))
		for _, ms := range m.list {
			if m.Search != "" && !containsFold(ms.Name, m.Search) && !containsFold(ms.Label, m.Search) {
				continue
			}
			if m.Difficulty != "" && m.Difficulty != FilterAll && string(ms.Difficulty) != m.Difficulty {
				continue
			}
			if m.Status != "" && m.Status != FilterAll && string(ms.Status) != m.Status {
				continue
			}
			out = append(out, ms)
		}
		return out
	})
}

func (m *Missions) index(id string) int {
	for n, ms := range m.list {
		if ms.ID == id {
			return n
		}
	}
	return -1
}

func (m *Missions) Get(id string) (model.Mission, bool) {
	if n := m.index(id); n >= 0 {
		return m.list[n], true
	}
	return model.Mission{}, false
}

// NewWizard starts a blank draft.
func (m *Missions) NewWizard() *Wizard {
	return &Wizard{Draft: model.Mission{
		Type:       "heist",
		Difficulty: "medium",
		Status:     model.MissionDraft,
		Rewards:    model.Reward{XP: 1000},
		CreatedBy:  AdminAuthor,
	}}
}

// EditWizard starts a draft from an existing mission.
func (m *Missions) EditWizard(id string) (*Wizard, bool) {
	ms, ok := m.Get(id)
	if !ok {
		return nil, false
	}
	return &Wizard{Draft: ms, editing: true}, true
}

// Save validates the draft's name and label and creates or updates it.
func (m *Missions) Save(w *Wizard) error {
	d := w.Draft
	d.Name = strings.TrimSpace(d.Name)
	d.Label = strings.TrimSpace(d.Label)
	if err := First(
		Required("name", d.Name, "El nombre es obligatorio"),
		Required("label", d.Label, "La etiqueta es obligatoria"),
	); err != nil {
		m.env.Dialogs.Alert(err.Error())
		return err
	}

	now := m.env.Now().Format("2006-01-02T15:04:05Z07:00")
	d.UpdatedAt = now
	event, verb := model.EvMissionUpdate, "actualizada"
	if !w.editing {
		d.ID = fmt.Sprintf("MISSION-%s", strings.ToUpper(uuid.NewString()[:8]))
		d.CreatedAt = now
		event, verb = model.EvMissionCreate, "creada"
	}
	call := bridge.NewCall(event, d)

	err := m.env.Run(Mutation{
		Apply: func() {
			if n := m.index(d.ID); n >= 0 {
				m.list[n] = d
			} else {
				m.list = append(m.list, d)
			}
			m.version++
		},
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivityAction, Action: fmt.Sprintf("Misión %s: %s", verb, d.Label), SubjectID: d.ID, SubjectName: d.Label},
	})
	if err == nil {
		w.Draft = d
		w.editing = true
	}
	return err
}

// SetStatus activates, completes or archives a mission.
func (m *Missions) SetStatus(id string, s model.MissionStatus) error {
	ms, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("mission %s not found", id)
	}
	ms.Status = s
	call := bridge.NewCall(model.EvMissionUpdate, ms)
	return m.env.Run(Mutation{
		Apply: func() {
			if n := m.index(id); n >= 0 {
				m.list[n].Status = s
				m.version++
			}
		},
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivityAction, Action: fmt.Sprintf("Misión %s: %s", s, ms.Label), SubjectID: id, SubjectName: ms.Label},
	})
}

// Delete removes a mission after confirmation.
func (m *Missions) Delete(id string) error {
	ms, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("mission %s not found", id)
	}
	call := bridge.NewCall(model.EvMissionDelete, id)
	return m.env.Run(Mutation{
		Confirm: &Confirmation{Title: fmt.Sprintf("Eliminar %s", ms.Label), Description: "La misión se eliminará del servidor.", Dangerous: true},
		Apply: func() {
			if n := m.index(id); n >= 0 {
				m.list = append(m.list[:n], m.list[n+1:]...)
				m.version++
			}
		},
		Emit:   &call,
		Record: &model.ActivityEntry{Type: model.ActivityAction, Action: fmt.Sprintf("Misión eliminada: %s", ms.Label), SubjectID: id, SubjectName: ms.Label},
	})
}

// ValidateThumbnail checks an uploaded thumbnail's size and sniffed type.
func ValidateThumbnail(data []byte) error {
	if len(data) > MaxThumbnailBytes {
		return invalid("thumbnail", "La imagen no puede superar 2MB")
	}
	if ct := http.DetectContentType(data); !strings.HasPrefix(ct, "image/") {
		return invalid("thumbnail", "El archivo debe ser una imagen")
	}
	return nil
}

// SetThumbnail validates data and stores it on the draft as a data URL.
func (w *Wizard) SetThumbnail(data []byte) error {
	if err := ValidateThumbnail(data); err != nil {
		return err
	}
	w.Draft.Thumbnail = "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
	return nil
}
