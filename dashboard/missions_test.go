package dashboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/puyokura/nuiadmin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardSteps(t *testing.T) {
	env := newTestEnv(t)
	w := NewMissions(env.Env).NewWizard()

	assert.Equal(t, StepBasic, w.Step())
	assert.False(t, w.Back())
	for i := 0; i < 6; i++ {
		require.True(t, w.Next())
	}
	assert.Equal(t, StepReview, w.Step())
	assert.Equal(t, "review", w.Step().String())
	assert.False(t, w.Next())
	assert.True(t, w.Back())
	assert.Equal(t, StepSecurity, w.Step())
}

func TestWizardBuildsDraft(t *testing.T) {
	env := newTestEnv(t)
	w := NewMissions(env.Env).NewWizard()

	npc := w.AddNPC("Guardia", "guard", "s_m_m_security_01", "aggressive", model.Coords{X: 1, Y: 2, Z: 3})
	assert.True(t, w.AddDialogue(npc, "¿Qué haces aquí?", "Nada", "Vete"))
	assert.False(t, w.AddDialogue("missing", "x"))
	w.AddObjective("Entrar", "goto", "Llega a la joyería")
	w.AddMinigame("lockpick", 3, model.Reward{XP: 100})
	w.AddMinigame("hack", 2, model.Reward{})
	w.AddMinigame("lockpick", 5, model.Reward{})

	require.Len(t, w.Draft.NPCs, 1)
	require.Len(t, w.Draft.NPCs[0].Dialogue, 1)
	assert.Len(t, w.Draft.NPCs[0].Dialogue[0].Options, 2)
	assert.Equal(t, []string{"lockpick", "laptop"}, w.RequiredItems())
}

func TestSaveMission(t *testing.T) {
	env := newTestEnv(t)
	m := NewMissions(env.Env)
	w := m.NewWizard()

	require.Error(t, m.Save(w))
	assert.Empty(t, env.host.Calls())

	w.Draft.Name, w.Draft.Label = "bank_job", "Fleeca Job"
	require.NoError(t, m.Save(w))
	assert.True(t, strings.HasPrefix(w.Draft.ID, "MISSION-"))
	assert.True(t, w.Editing())
	assert.Len(t, m.Visible(), 5)

	w.Draft.Label = "Fleeca Heist"
	require.NoError(t, m.Save(w))
	assert.Len(t, m.Visible(), 5)
	got, _ := m.Get(w.Draft.ID)
	assert.Equal(t, "Fleeca Heist", got.Label)
	assert.Equal(t, []string{model.EvMissionCreate, model.EvMissionUpdate}, env.host.Events())
	assert.Equal(t, "Misión actualizada: Fleeca Heist", env.Ledger.Entries()[0].Action)
}

func TestMissionFilters(t *testing.T) {
	env := newTestEnv(t)
	m := NewMissions(env.Env)

	m.Difficulty = "medium"
	assert.Len(t, m.Visible(), 2)
	m.Difficulty, m.Status = FilterAll, string(model.MissionDraft)
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "MISSION-003", m.Visible()[0].ID)
	m.Status, m.Search = FilterAll, "jewelry"
	assert.Len(t, m.Visible(), 1)
}

func TestMissionStatusAndDelete(t *testing.T) {
	env := newTestEnv(t)
	m := NewMissions(env.Env)

	require.NoError(t, m.SetStatus("MISSION-003", model.MissionActive))
	got, _ := m.Get("MISSION-003")
	assert.Equal(t, model.MissionActive, got.Status)

	require.ErrorIs(t, m.Delete("MISSION-001"), ErrAwaitingConfirmation)
	env.Dialogs.Confirm()
	_, ok := m.Get("MISSION-001")
	assert.False(t, ok)
	last, _ := env.host.Last()
	assert.Equal(t, model.EvMissionDelete, last.Event)

	assert.Error(t, m.Delete("MISSION-404"))
}

func TestEditWizard(t *testing.T) {
	env := newTestEnv(t)
	m := NewMissions(env.Env)

	w, ok := m.EditWizard("MISSION-002")
	require.True(t, ok)
	assert.True(t, w.Editing())
	_, ok = m.EditWizard("nope")
	assert.False(t, ok)
}

func TestValidateThumbnail(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	assert.NoError(t, ValidateThumbnail(png))
	assert.Error(t, ValidateThumbnail([]byte("hola, no soy una imagen")))

	big := append(append([]byte(nil), png...), bytes.Repeat([]byte{0}, MaxThumbnailBytes)...)
	assert.Error(t, ValidateThumbnail(big))
}

func TestSetThumbnail(t *testing.T) {
	env := newTestEnv(t)
	w := NewMissions(env.Env).NewWizard()

	require.True(t, IsValidation(w.SetThumbnail([]byte("texto plano"))))
	assert.Empty(t, w.Draft.Thumbnail)

	require.NoError(t, w.SetThumbnail([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")))
	assert.True(t, strings.HasPrefix(w.Draft.Thumbnail, "data:image/png;base64,"))
}
