package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"buildsafe/go_backend/internal/domain/quote"
	pdfgen "buildsafe/go_backend/internal/domain/quote/pdf/gofpdf"
)

// QuoteRequest is the editing payload: draft-shaped sections plus the
// quote metadata. Item ids are the client's editing handles and are
// stripped before persisting.
type QuoteRequest struct {
	ProjectID        string          `json:"project_id"`
	CustomerID       string          `json:"customer_id"`
	ProjectLocation  string          `json:"project_location"`
	Status           string          `json:"status"`
	CreatedByName    string          `json:"created_by_name"`
	QuoteDate        string          `json:"quote_date"`
	Sections         []quote.Section `json:"sections"`
	Notes            string          `json:"notes"`
	DuePayable       string          `json:"due_payable"`
	PaymentTerms     string          `json:"payment_terms"`
	IncludeVAT       bool            `json:"include_vat"`
	OverrideSubtotal bool            `json:"override_subtotal"`
	ManualSubtotal   float64         `json:"manual_subtotal"`
}

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.DB.ListQuotes(r.Context())
	if err != nil {
		log.Printf("quotes list failed: %v", err)
		http.Error(w, "failed to load quotes", http.StatusInternalServerError)
		return
	}
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quotes)
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	q, err := quoteFromRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.DB.InsertQuote(r.Context(), q)
	if err != nil {
		log.Printf("quotes create failed: %v", err)
		http.Error(w, "failed to save quote", http.StatusInternalServerError)
		return
	}
	log.Printf("quotes created id=%s project_id=%s amount=%.2f sections=%d", id, q.ProjectID, q.Amount, len(q.Sections))

	q.ID = id
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(q)
}

func (h *Handlers) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	q, err := quoteFromRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	q.ID = id

	if err := h.DB.UpdateQuote(r.Context(), q); err != nil {
		log.Printf("quotes update id=%s failed: %v", id, err)
		http.Error(w, "failed to save quote", http.StatusInternalServerError)
		return
	}
	log.Printf("quotes updated id=%s amount=%.2f sections=%d", id, q.Amount, len(q.Sections))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(q)
}

func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q, err := h.DB.GetQuote(r.Context(), id)
	if err != nil {
		log.Printf("quotes pdf id=%s load failed: %v", id, err)
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}

	pdfBytes, err := pdfgen.New().Generate(*q)
	if err != nil {
		log.Printf("quotes pdf id=%s generation failed: %v", id, err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}
	log.Printf("quotes pdf id=%s ok bytes=%d", id, len(pdfBytes))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// quoteFromRequest rebuilds the draft, prices it and serializes it into
// the persisted shape. The stored amount is always the computed total.
func quoteFromRequest(req QuoteRequest) (quote.Quote, error) {
	if strings.TrimSpace(req.ProjectID) == "" || strings.TrimSpace(req.CustomerID) == "" {
		return quote.Quote{}, fmt.Errorf("project_id and customer_id are required")
	}
	if strings.TrimSpace(req.QuoteDate) == "" {
		return quote.Quote{}, fmt.Errorf("quote_date is required")
	}

	d := quote.Draft{
		Sections:         req.Sections,
		OverrideSubtotal: req.OverrideSubtotal,
		ManualSubtotal:   req.ManualSubtotal,
		IncludeVAT:       req.IncludeVAT,
	}
	sections, flat := quote.Serialize(d)

	q := quote.Quote{
		ProjectID:            req.ProjectID,
		CustomerID:           req.CustomerID,
		ProjectLocation:      req.ProjectLocation,
		Status:               req.Status,
		CreatedByName:        req.CreatedByName,
		QuoteDate:            req.QuoteDate,
		Sections:             sections,
		Items:                flat,
		Amount:               quote.Total(d),
		Notes:                req.Notes,
		DuePayable:           req.DuePayable,
		PaymentTerms:         req.PaymentTerms,
		IsSubtotalOverridden: req.OverrideSubtotal,
	}
	if q.Status == "" {
		q.Status = "draft"
	}
	if req.OverrideSubtotal {
		manual := req.ManualSubtotal
		q.OverrideSubtotal = &manual
	}
	return q, nil
}
