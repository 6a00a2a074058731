package quote

import "time"

// PersistedItem is the stored shape of a line item. Editing ids are a
// client-side convenience and are not persisted. Qty nil means the row
// predates quantities and defaults to 1 on load; zero is a real value.
type PersistedItem struct {
	Number      string   `json:"number"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Qty         *int     `json:"qty"`
}

// Quantity resolves the persisted qty, defaulting to 1 when absent.
func (pi PersistedItem) Quantity() int {
	if pi.Qty == nil {
		return 1
	}
	return *pi.Qty
}

// PersistedSection is the stored shape of a quote section.
type PersistedSection struct {
	Title       string          `json:"title"`
	Items       []PersistedItem `json:"items"`
	ManualPrice *float64        `json:"manualPrice"`
}

// Quote is the persisted record. Sections is the current representation;
// Items is the same data flattened for consumers that predate sectioning.
type Quote struct {
	ID                   string             `json:"id,omitempty"`
	ProjectID            string             `json:"project_id"`
	CustomerID           string             `json:"customer_id"`
	ProjectLocation      string             `json:"project_location"`
	Status               string             `json:"status"`
	CreatedByName        string             `json:"created_by_name"`
	QuoteDate            string             `json:"quote_date"`
	Sections             []PersistedSection `json:"sections"`
	Items                []PersistedItem    `json:"items"`
	Amount               float64            `json:"amount"`
	Notes                string             `json:"notes"`
	DuePayable           string             `json:"due_payable"`
	PaymentTerms         string             `json:"payment_terms"`
	OverrideSubtotal     *float64           `json:"override_subtotal"`
	IsSubtotalOverridden bool               `json:"is_subtotal_overridden"`
	CreatedAt            time.Time          `json:"created_at,omitempty"`
}
