package inspection

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Kind selects a checklist template and its backing table.
type Kind string

const (
	KindCrane    Kind = "crane"
	KindGuarding Kind = "guarding"
	KindForklift Kind = "forklift"
	KindVehicle  Kind = "vehicle"
	KindSite     Kind = "site"
	KindPPE      Kind = "ppe"
)

// Item statuses for checklist entries.
const (
	StatusPass = "pass"
	StatusFail = "fail"
	StatusNA   = "na"
)

// PPE ratings; PPE items are rated for condition rather than pass/fail.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingAverage   = "average"
	RatingPoor      = "poor"
	RatingReplace   = "replace"
	RatingNA        = "na"
)

// Item is one checklist entry. Status is used by pass/fail inspections,
// Rating and DateOrdered by PPE condition checks.
type Item struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Status      string `json:"status,omitempty"`
	Rating      string `json:"rating,omitempty"`
	DateOrdered string `json:"dateOrdered,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Record is one persisted inspection. The association fields that apply
// depend on the kind: equipment checks carry EquipmentID, vehicle checks
// VehicleID, site checks SiteID and ProjectID, PPE checks a staff or
// worker reference.
type Record struct {
	ID            string `json:"id,omitempty"`
	Kind          Kind   `json:"-"`
	CreatedByName string `json:"created_by_name"`
	CheckDate     string `json:"check_date"`
	EquipmentID   string `json:"equipment_id,omitempty"`
	VehicleID     string `json:"vehicle_id,omitempty"`
	SiteID        string `json:"site_id,omitempty"`
	ProjectID     string `json:"project_id,omitempty"`
	StaffID       *int64 `json:"staff_id,omitempty"`
	WorkerID      string `json:"worker_id,omitempty"`
	Status        string `json:"status"`
	Items         []Item `json:"items"`
	Notes         string `json:"notes,omitempty"`
	Odometer      *int   `json:"odometer,omitempty"`
}

// Wizard steps. Step 1 collects details, step 2 the checklist, step 3
// notes and submission.
const (
	StepDetails = 1
	StepItems   = 2
	StepNotes   = 3
)

var (
	ErrMissingDetails = errors.New("inspector name and date are required")
	ErrNoNamedItems   = errors.New("at least one item with a name is required")
)

// ValidateStep gates wizard advancement. Errors are inline guidance for
// the current step, never fatal; later steps have no checks of their own.
func ValidateStep(r Record, step int) error {
	switch step {
	case StepDetails:
		if strings.TrimSpace(r.CreatedByName) == "" || strings.TrimSpace(r.CheckDate) == "" {
			return ErrMissingDetails
		}
	case StepItems:
		if len(r.Items) == 0 {
			return ErrNoNamedItems
		}
		for _, it := range r.Items {
			if strings.TrimSpace(it.Name) == "" {
				return ErrNoNamedItems
			}
		}
	}
	return nil
}

// NewRecord returns a record pre-populated with the kind's default
// checklist, every entry passing (or rated good for PPE).
func NewRecord(kind Kind) Record {
	return Record{
		Kind:   kind,
		Status: StatusPass,
		Items:  DefaultItems(kind),
	}
}

// RestoreItems regenerates editing ids on items loaded from a persisted
// record, falling back to the kind's defaults when the record has none.
func RestoreItems(kind Kind, items []Item) []Item {
	if len(items) == 0 {
		return DefaultItems(kind)
	}
	out := make([]Item, len(items))
	for i, it := range items {
		it.ID = uuid.NewString()
		out[i] = it
	}
	return out
}

// StripIDs drops the editing ids before persisting; ids are regenerated
// on every load and never stored.
func StripIDs(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.ID = ""
		out[i] = it
	}
	return out
}

// Table maps a kind to its PostgREST table.
func Table(kind Kind) string {
	switch kind {
	case KindCrane:
		return "crane_operator_inspections"
	case KindGuarding:
		return "guarding_inspections"
	case KindForklift:
		return "forklift_daily_inspections"
	case KindVehicle:
		return "motor_vehicle_inspections"
	case KindSite:
		return "site_inspections"
	case KindPPE:
		return "ppe_inspections"
	}
	return ""
}

// Title is the display heading used on forms and PDF exports.
func Title(kind Kind) string {
	switch kind {
	case KindCrane:
		return "Crane Operator Inspection"
	case KindGuarding:
		return "Guarding (Emergency Stop) Inspection"
	case KindForklift:
		return "Forklift Daily Inspection"
	case KindVehicle:
		return "Motor Vehicle Inspection"
	case KindSite:
		return "Site Inspection"
	case KindPPE:
		return "PPE Inspection"
	}
	return "Inspection"
}
