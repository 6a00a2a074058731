package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"buildsafe/go_backend/internal/app/http/handlers/ai"
	"buildsafe/go_backend/internal/domain/rams"
)

type hazardsRequest struct {
	Details  ai.RAMSDetails `json:"details"`
	Prompt   string         `json:"prompt"`
	Existing []rams.Hazard  `json:"existing"`
}

type hazardsResponse struct {
	Text    string        `json:"text"`
	Hazards []rams.Hazard `json:"hazards"`
}

// GenerateHazards returns AI-suggested hazards. When the request carries
// the currently entered hazards, suggestions are merged into them by
// fuzzy title match instead of appended blindly.
func (h *Handlers) GenerateHazards(w http.ResponseWriter, r *http.Request) {
	var req hazardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	text, suggested, err := h.AI.GenerateHazards(r.Context(), req.Details, req.Prompt)
	if err != nil {
		log.Printf("rams hazards generation failed: %v", err)
		http.Error(w, "hazard generation failed", http.StatusBadGateway)
		return
	}
	log.Printf("rams hazards ok suggested=%d existing=%d", len(suggested), len(req.Existing))

	hazards := suggested
	if len(req.Existing) > 0 {
		hazards = rams.MergeSuggested(req.Existing, suggested)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(hazardsResponse{Text: text, Hazards: hazards})
}

type sequenceRequest struct {
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

func (h *Handlers) GenerateSequence(w http.ResponseWriter, r *http.Request) {
	var req sequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	sequence, err := h.AI.GenerateSequence(r.Context(), req.Description, req.Prompt)
	if err != nil {
		log.Printf("rams sequence generation failed: %v", err)
		http.Error(w, "sequence generation failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"sequence": sequence})
}

type hospitalRequest struct {
	Postcode string `json:"postcode"`
}

func (h *Handlers) LocateHospital(w http.ResponseWriter, r *http.Request) {
	var req hospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Postcode == "" {
		http.Error(w, "postcode is required", http.StatusBadRequest)
		return
	}

	hospital, err := h.AI.LocateHospital(r.Context(), req.Postcode)
	if err != nil {
		log.Printf("rams hospital lookup failed: %v", err)
		http.Error(w, "hospital lookup failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"hospital": hospital})
}
