package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"buildsafe/go_backend/internal/domain/inspection"
	pdfgen "buildsafe/go_backend/internal/domain/inspection/pdf/gofpdf"
	"buildsafe/go_backend/internal/infra/supabase"
)

func parseKind(r *http.Request) (inspection.Kind, bool) {
	k := inspection.Kind(chi.URLParam(r, "kind"))
	return k, inspection.Table(k) != ""
}

func (h *Handlers) ListInspections(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(r)
	if !ok {
		http.Error(w, "unknown inspection kind", http.StatusNotFound)
		return
	}

	var records []inspection.Record
	err := h.SB.Select(r.Context(), inspection.Table(kind), supabase.SelectOpts{
		Columns: "*",
		Order:   "check_date.desc",
	}, &records)
	if err != nil {
		log.Printf("inspections kind=%s list failed: %v", kind, err)
		http.Error(w, "failed to load inspections", http.StatusBadGateway)
		return
	}
	if records == nil {
		records = []inspection.Record{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *Handlers) NewInspection(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(r)
	if !ok {
		http.Error(w, "unknown inspection kind", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inspection.NewRecord(kind))
}

func (h *Handlers) CreateInspection(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(r)
	if !ok {
		http.Error(w, "unknown inspection kind", http.StatusNotFound)
		return
	}

	var rec inspection.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	rec.Kind = kind
	if err := validateRecord(rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec.ID = ""
	rec.Items = inspection.StripIDs(rec.Items)
	if err := h.SB.Insert(r.Context(), inspection.Table(kind), rec); err != nil {
		log.Printf("inspections kind=%s create failed: %v", kind, err)
		http.Error(w, "failed to save inspection", http.StatusBadGateway)
		return
	}
	log.Printf("inspections kind=%s created inspector=%s items=%d", kind, rec.CreatedByName, len(rec.Items))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) UpdateInspection(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(r)
	if !ok {
		http.Error(w, "unknown inspection kind", http.StatusNotFound)
		return
	}
	id := chi.URLParam(r, "id")

	var rec inspection.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	rec.Kind = kind
	if err := validateRecord(rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec.ID = ""
	rec.Items = inspection.StripIDs(rec.Items)
	if err := h.SB.Update(r.Context(), inspection.Table(kind), id, rec); err != nil {
		log.Printf("inspections kind=%s update id=%s failed: %v", kind, id, err)
		http.Error(w, "failed to save inspection", http.StatusBadGateway)
		return
	}
	log.Printf("inspections kind=%s updated id=%s", kind, id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) InspectionPDF(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(r)
	if !ok {
		http.Error(w, "unknown inspection kind", http.StatusNotFound)
		return
	}
	id := chi.URLParam(r, "id")

	var records []inspection.Record
	err := h.SB.Select(r.Context(), inspection.Table(kind), supabase.SelectOpts{
		Columns: "*",
		Filters: map[string]string{"id": "eq." + id},
		Limit:   1,
	}, &records)
	if err != nil {
		log.Printf("inspections kind=%s pdf id=%s load failed: %v", kind, id, err)
		http.Error(w, "failed to load inspection", http.StatusBadGateway)
		return
	}
	if len(records) == 0 {
		http.Error(w, "inspection not found", http.StatusNotFound)
		return
	}
	rec := records[0]
	rec.Kind = kind
	rec.Items = inspection.RestoreItems(kind, rec.Items)

	details, order := inspectionDetails(rec)
	pdfBytes, err := pdfgen.New().Generate(rec, details, order)
	if err != nil {
		log.Printf("inspections kind=%s pdf id=%s generation failed: %v", kind, id, err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%s.pdf"`, kind, id))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func validateRecord(rec inspection.Record) error {
	for _, step := range []int{inspection.StepDetails, inspection.StepItems} {
		if err := inspection.ValidateStep(rec, step); err != nil {
			return err
		}
	}
	return nil
}

// inspectionDetails builds the kind-specific header block for the PDF.
func inspectionDetails(rec inspection.Record) (map[string]string, []string) {
	details := map[string]string{
		"Inspector": rec.CreatedByName,
		"Date":      rec.CheckDate,
	}
	order := []string{"Inspector", "Date"}

	add := func(label, value string) {
		details[label] = value
		order = append(order, label)
	}
	switch rec.Kind {
	case inspection.KindCrane, inspection.KindGuarding, inspection.KindForklift:
		add("Equipment", rec.EquipmentID)
	case inspection.KindVehicle:
		add("Vehicle", rec.VehicleID)
		if rec.Odometer != nil {
			add("Odometer", strconv.Itoa(*rec.Odometer))
		}
	case inspection.KindSite:
		add("Site", rec.SiteID)
		add("Project", rec.ProjectID)
	case inspection.KindPPE:
		if rec.StaffID != nil {
			add("Staff", strconv.FormatInt(*rec.StaffID, 10))
		}
		if rec.WorkerID != "" {
			add("Worker", rec.WorkerID)
		}
	}
	add("Overall Status", rec.Status)
	return details, order
}
