package rams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarTitles(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Working at Height", "working at height", true},
		{"WORKING AT HEIGHT!", "working at height", true},
		{"Working at Height", "Working at Height from Ladders", true},
		{"Manual Handling", "Manual Handling of Heavy Loads", true},
		{"Electrical Shock from Power Tools", "Electric Shock", true},
		{"Slips and Trips", "Trips", true},
		{"Noise", "Vibration", false},
		{"Dust Inhalation", "Silica Dust Exposure", true},
		{"Fire", "Flood", false},
		{"", "", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SimilarTitles(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestMergeSuggestedAppendsUnmatched(t *testing.T) {
	existing := []Hazard{{ID: "h1", Title: "MANUAL HANDLING"}}
	suggested := []Hazard{{ID: "s1", Title: "ASBESTOS EXPOSURE", BeforeLikelihood: 3, BeforeSeverity: 5, BeforeTotal: 15}}

	out := MergeSuggested(existing, suggested)
	require.Len(t, out, 2)
	assert.Equal(t, "ASBESTOS EXPOSURE", out[1].Title)
}

func TestMergeSuggestedUpdatesMatchingHazard(t *testing.T) {
	existing := []Hazard{{
		ID:               "h1",
		Title:            "WORKING AT HEIGHT",
		WhoMightBeHarmed: "",
		HowMightBeHarmed: "Falls from ladders",
		BeforeLikelihood: 2,
		BeforeSeverity:   4,
		BeforeTotal:      8,
		ControlMeasures: []ControlMeasure{
			{ID: "m1", Description: "Use scaffold towers"},
		},
	}}
	suggested := []Hazard{{
		ID:               "s1",
		Title:            "Working at Height from Ladders",
		WhoMightBeHarmed: "Operatives and site visitors",
		HowMightBeHarmed: "Impact injuries from dropped tools",
		BeforeLikelihood: 4,
		BeforeSeverity:   3,
		BeforeTotal:      12,
		ControlMeasures: []ControlMeasure{
			{ID: "sm1", Description: "use scaffold towers"},
			{ID: "sm2", Description: "Tool lanyards for work above walkways"},
		},
	}}

	out := MergeSuggested(existing, suggested)
	require.Len(t, out, 1, "similar titles merge instead of duplicating")
	h := out[0]

	require.Len(t, h.ControlMeasures, 2, "case-insensitive duplicate measure dropped")
	assert.Equal(t, "Tool lanyards for work above walkways", h.ControlMeasures[1].Description)
	assert.NotEqual(t, "sm2", h.ControlMeasures[1].ID, "merged measures get fresh ids")

	assert.Equal(t, "Falls from ladders\nImpact injuries from dropped tools", h.HowMightBeHarmed)
	assert.Equal(t, "Operatives and site visitors", h.WhoMightBeHarmed, "empty who-might-be-harmed is filled in")

	assert.Equal(t, 4, h.BeforeLikelihood, "keeps the higher likelihood")
	assert.Equal(t, 4, h.BeforeSeverity, "keeps the higher severity")
	assert.Equal(t, 12, h.BeforeTotal, "keeps the higher total")
}

func TestMergeSuggestedKeepsExistingHarmWhenContained(t *testing.T) {
	existing := []Hazard{{ID: "h1", Title: "NOISE", HowMightBeHarmed: "Hearing damage from prolonged exposure"}}
	suggested := []Hazard{{ID: "s1", Title: "Noise", HowMightBeHarmed: "hearing damage"}}

	out := MergeSuggested(existing, suggested)
	require.Len(t, out, 1)
	assert.Equal(t, "Hearing damage from prolonged exposure", out[0].HowMightBeHarmed)
}

func TestMergeSuggestedDoesNotMutateExisting(t *testing.T) {
	existing := []Hazard{{ID: "h1", Title: "NOISE", ControlMeasures: []ControlMeasure{{ID: "m1", Description: "Ear defenders"}}}}
	suggested := []Hazard{{ID: "s1", Title: "noise", ControlMeasures: []ControlMeasure{{ID: "sm1", Description: "Job rotation"}}}}

	_ = MergeSuggested(existing, suggested)
	assert.Len(t, existing[0].ControlMeasures, 1)
}
