package rams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(v int) *int       { return &v }
func sp(v string) *string { return &v }

func TestNewHazardDefaults(t *testing.T) {
	h := NewHazard()
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, 1, h.BeforeLikelihood)
	assert.Equal(t, 1, h.BeforeSeverity)
	assert.Equal(t, 1, h.BeforeTotal)
	assert.Equal(t, 1, h.AfterTotal)
	assert.Empty(t, h.ControlMeasures)
}

func TestUpdateHazardRecomputesTotalWhenFactorPresent(t *testing.T) {
	hazards := []Hazard{{ID: "h1", BeforeLikelihood: 2, BeforeSeverity: 3, BeforeTotal: 6, AfterLikelihood: 1, AfterSeverity: 3, AfterTotal: 3}}

	hazards = UpdateHazard(hazards, "h1", HazardUpdate{BeforeLikelihood: ip(4), BeforeSeverity: ip(5)})
	assert.Equal(t, 20, hazards[0].BeforeTotal)
	assert.Equal(t, 3, hazards[0].AfterTotal, "after total untouched when no after factor in the update")
}

// Two single-field updates recompute each total from one fresh and one
// previous factor. The second call sees the first call's result, so the
// end state is consistent here; the stale pairing shows up when a caller
// sends likelihood and severity as separate updates against the same
// starting snapshot. This mirrors the long-standing behaviour on purpose.
func TestUpdateHazardSequentialSingleFieldUpdates(t *testing.T) {
	hazards := []Hazard{{ID: "h1", BeforeLikelihood: 2, BeforeSeverity: 3, BeforeTotal: 6}}

	step1 := UpdateHazard(hazards, "h1", HazardUpdate{BeforeLikelihood: ip(5)})
	assert.Equal(t, 15, step1[0].BeforeTotal, "5 (new) * 3 (previous severity)")

	step2 := UpdateHazard(step1, "h1", HazardUpdate{BeforeSeverity: ip(4)})
	assert.Equal(t, 20, step2[0].BeforeTotal)

	// Same two updates applied independently to the original snapshot:
	// each total mixes one stale factor.
	alt := UpdateHazard(hazards, "h1", HazardUpdate{BeforeSeverity: ip(4)})
	assert.Equal(t, 8, alt[0].BeforeTotal, "2 (stale likelihood) * 4 (new)")
}

func TestUpdateHazardZeroFactorFallsBackToPrevious(t *testing.T) {
	hazards := []Hazard{{ID: "h1", BeforeLikelihood: 2, BeforeSeverity: 3, BeforeTotal: 6}}
	hazards = UpdateHazard(hazards, "h1", HazardUpdate{BeforeLikelihood: ip(0)})
	assert.Equal(t, 0, hazards[0].BeforeLikelihood, "the field itself is assigned")
	assert.Equal(t, 6, hazards[0].BeforeTotal, "the total still multiplies the previous factor")
}

func TestUpdateHazardTextFields(t *testing.T) {
	hazards := []Hazard{NewHazard()}
	id := hazards[0].ID
	hazards = UpdateHazard(hazards, id, HazardUpdate{Title: sp("WORKING AT HEIGHT"), WhoMightBeHarmed: sp("Operatives")})
	assert.Equal(t, "WORKING AT HEIGHT", hazards[0].Title)
	assert.Equal(t, "Operatives", hazards[0].WhoMightBeHarmed)
}

func TestRemoveHazardUnknownIDIsNoop(t *testing.T) {
	hazards := []Hazard{NewHazard(), NewHazard()}
	out := RemoveHazard(hazards, "missing")
	assert.Len(t, out, 2)
	out = RemoveHazard(hazards, hazards[0].ID)
	require.Len(t, out, 1)
	assert.Equal(t, hazards[1].ID, out[0].ID)
}

func TestControlMeasureLifecycle(t *testing.T) {
	hazards := []Hazard{NewHazard()}
	id := hazards[0].ID

	hazards = AddControlMeasure(hazards, id)
	require.Len(t, hazards[0].ControlMeasures, 1)
	mid := hazards[0].ControlMeasures[0].ID

	hazards = UpdateControlMeasure(hazards, id, mid, "Use a podium step, not a ladder")
	assert.Equal(t, "Use a podium step, not a ladder", hazards[0].ControlMeasures[0].Description)

	hazards = RemoveControlMeasure(hazards, id, mid)
	assert.Empty(t, hazards[0].ControlMeasures)
}

func TestReimportHazardsRegeneratesIDs(t *testing.T) {
	source := []Hazard{{
		ID:    "old",
		Title: "SILICA DUST",
		ControlMeasures: []ControlMeasure{
			{ID: "m1", Description: "On-tool extraction"},
		},
	}}
	imported := ReimportHazards(source)
	require.Len(t, imported, 1)
	assert.NotEqual(t, "old", imported[0].ID)
	assert.NotEqual(t, "m1", imported[0].ControlMeasures[0].ID)
	assert.Equal(t, "SILICA DUST", imported[0].Title)
	assert.Equal(t, "On-tool extraction", imported[0].ControlMeasures[0].Description)
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	hazards := []Hazard{{ID: "h1", BeforeLikelihood: 2, BeforeSeverity: 3, BeforeTotal: 6}}
	_ = UpdateHazard(hazards, "h1", HazardUpdate{BeforeLikelihood: ip(5)})
	assert.Equal(t, 2, hazards[0].BeforeLikelihood)
	assert.Equal(t, 6, hazards[0].BeforeTotal)
}
