package rams

import "github.com/google/uuid"

// ControlMeasure is one mitigation line attached to a hazard.
type ControlMeasure struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Hazard is one risk-assessment entry with likelihood/severity scores
// before and after control measures. Totals are likelihood * severity.
type Hazard struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	WhoMightBeHarmed string           `json:"whoMightBeHarmed"`
	HowMightBeHarmed string           `json:"howMightBeHarmed"`
	BeforeLikelihood int              `json:"beforeLikelihood"`
	BeforeSeverity   int              `json:"beforeSeverity"`
	BeforeTotal      int              `json:"beforeTotal"`
	ControlMeasures  []ControlMeasure `json:"controlMeasures"`
	AfterLikelihood  int              `json:"afterLikelihood"`
	AfterSeverity    int              `json:"afterSeverity"`
	AfterTotal       int              `json:"afterTotal"`
}

// HazardUpdate is a partial update; nil fields are left unchanged.
type HazardUpdate struct {
	Title            *string
	WhoMightBeHarmed *string
	HowMightBeHarmed *string
	BeforeLikelihood *int
	BeforeSeverity   *int
	AfterLikelihood  *int
	AfterSeverity    *int
}

func newID() string { return uuid.NewString() }

// NewHazard returns an empty hazard with all scores at 1.
func NewHazard() Hazard {
	return Hazard{
		ID:               newID(),
		BeforeLikelihood: 1,
		BeforeSeverity:   1,
		BeforeTotal:      1,
		ControlMeasures:  []ControlMeasure{},
		AfterLikelihood:  1,
		AfterSeverity:    1,
		AfterTotal:       1,
	}
}

// AddHazard appends a fresh empty hazard.
func AddHazard(hazards []Hazard) []Hazard {
	return append(cloneHazards(hazards), NewHazard())
}

// UpdateHazard applies a partial update to the matching hazard. A total is
// recomputed only when the update carries either of its factors, and the
// recomputation reads the previous hazard's value for whichever factor the
// update omits. Two single-field updates in a row can therefore leave a
// total built from one stale and one fresh factor; callers relying on the
// historical behaviour get exactly that.
func UpdateHazard(hazards []Hazard, id string, upd HazardUpdate) []Hazard {
	out := cloneHazards(hazards)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		h := &out[i]
		prev := hazards[i]
		if upd.Title != nil {
			h.Title = *upd.Title
		}
		if upd.WhoMightBeHarmed != nil {
			h.WhoMightBeHarmed = *upd.WhoMightBeHarmed
		}
		if upd.HowMightBeHarmed != nil {
			h.HowMightBeHarmed = *upd.HowMightBeHarmed
		}
		if upd.BeforeLikelihood != nil {
			h.BeforeLikelihood = *upd.BeforeLikelihood
		}
		if upd.BeforeSeverity != nil {
			h.BeforeSeverity = *upd.BeforeSeverity
		}
		if upd.AfterLikelihood != nil {
			h.AfterLikelihood = *upd.AfterLikelihood
		}
		if upd.AfterSeverity != nil {
			h.AfterSeverity = *upd.AfterSeverity
		}
		if upd.BeforeLikelihood != nil || upd.BeforeSeverity != nil {
			h.BeforeTotal = orPrev(upd.BeforeLikelihood, prev.BeforeLikelihood) * orPrev(upd.BeforeSeverity, prev.BeforeSeverity)
		}
		if upd.AfterLikelihood != nil || upd.AfterSeverity != nil {
			h.AfterTotal = orPrev(upd.AfterLikelihood, prev.AfterLikelihood) * orPrev(upd.AfterSeverity, prev.AfterSeverity)
		}
	}
	return out
}

// orPrev picks the updated factor for a total. A zero factor also falls
// back to the previous value, mirroring the historical behaviour even
// though the field itself is still assigned.
func orPrev(v *int, prev int) int {
	if v != nil && *v != 0 {
		return *v
	}
	return prev
}

// RemoveHazard deletes the matching hazard; unknown ids are a no-op.
func RemoveHazard(hazards []Hazard, id string) []Hazard {
	out := make([]Hazard, 0, len(hazards))
	for _, h := range hazards {
		if h.ID != id {
			out = append(out, cloneHazard(h))
		}
	}
	return out
}

// AddControlMeasure appends one empty measure to the matching hazard.
func AddControlMeasure(hazards []Hazard, hazardID string) []Hazard {
	out := cloneHazards(hazards)
	for i := range out {
		if out[i].ID == hazardID {
			out[i].ControlMeasures = append(out[i].ControlMeasures, ControlMeasure{ID: newID()})
		}
	}
	return out
}

// UpdateControlMeasure replaces the description of one measure.
func UpdateControlMeasure(hazards []Hazard, hazardID, measureID, description string) []Hazard {
	out := cloneHazards(hazards)
	for i := range out {
		if out[i].ID != hazardID {
			continue
		}
		for j := range out[i].ControlMeasures {
			if out[i].ControlMeasures[j].ID == measureID {
				out[i].ControlMeasures[j].Description = description
			}
		}
	}
	return out
}

// RemoveControlMeasure deletes one measure from the matching hazard.
func RemoveControlMeasure(hazards []Hazard, hazardID, measureID string) []Hazard {
	out := cloneHazards(hazards)
	for i := range out {
		if out[i].ID != hazardID {
			continue
		}
		kept := out[i].ControlMeasures[:0]
		for _, m := range out[i].ControlMeasures {
			if m.ID != measureID {
				kept = append(kept, m)
			}
		}
		out[i].ControlMeasures = kept
	}
	return out
}

// ReimportHazards copies hazards from a previous RAMS or risk assessment,
// assigning fresh ids to hazards and their measures so imports never
// collide with existing entries.
func ReimportHazards(source []Hazard) []Hazard {
	out := cloneHazards(source)
	for i := range out {
		out[i].ID = newID()
		for j := range out[i].ControlMeasures {
			out[i].ControlMeasures[j].ID = newID()
		}
	}
	return out
}

func cloneHazard(h Hazard) Hazard {
	measures := make([]ControlMeasure, len(h.ControlMeasures))
	copy(measures, h.ControlMeasures)
	h.ControlMeasures = measures
	return h
}

func cloneHazards(hazards []Hazard) []Hazard {
	out := make([]Hazard, len(hazards))
	for i, h := range hazards {
		out[i] = cloneHazard(h)
	}
	return out
}
