package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"buildsafe/go_backend/internal/domain/quote"
)

// ListQuotes returns persisted quotes, newest quote first.
func (db *DB) ListQuotes(ctx context.Context) ([]quote.Quote, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, project_id, customer_id, COALESCE(project_location, ''), status,
		       COALESCE(created_by_name, ''), quote_date::text, sections, items, amount,
		       COALESCE(notes, ''), COALESCE(due_payable, ''), COALESCE(payment_terms, ''),
		       override_subtotal, is_subtotal_overridden, created_at
		FROM quotes
		ORDER BY quote_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var out []quote.Quote
	for rows.Next() {
		var q quote.Quote
		var sectionsJSON, itemsJSON []byte
		if err := rows.Scan(&q.ID, &q.ProjectID, &q.CustomerID, &q.ProjectLocation, &q.Status,
			&q.CreatedByName, &q.QuoteDate, &sectionsJSON, &itemsJSON, &q.Amount,
			&q.Notes, &q.DuePayable, &q.PaymentTerms,
			&q.OverrideSubtotal, &q.IsSubtotalOverridden, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		// Old rows may hold shapes that predate sectioning; bad json
		// degrades to empty, the initializer fills in defaults.
		if len(sectionsJSON) > 0 {
			_ = json.Unmarshal(sectionsJSON, &q.Sections)
		}
		if len(itemsJSON) > 0 {
			_ = json.Unmarshal(itemsJSON, &q.Items)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// GetQuote fetches one quote by id.
func (db *DB) GetQuote(ctx context.Context, id string) (*quote.Quote, error) {
	var q quote.Quote
	var sectionsJSON, itemsJSON []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT id, project_id, customer_id, COALESCE(project_location, ''), status,
		       COALESCE(created_by_name, ''), quote_date::text, sections, items, amount,
		       COALESCE(notes, ''), COALESCE(due_payable, ''), COALESCE(payment_terms, ''),
		       override_subtotal, is_subtotal_overridden, created_at
		FROM quotes WHERE id = $1`, id).
		Scan(&q.ID, &q.ProjectID, &q.CustomerID, &q.ProjectLocation, &q.Status,
			&q.CreatedByName, &q.QuoteDate, &sectionsJSON, &itemsJSON, &q.Amount,
			&q.Notes, &q.DuePayable, &q.PaymentTerms,
			&q.OverrideSubtotal, &q.IsSubtotalOverridden, &q.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if len(sectionsJSON) > 0 {
		_ = json.Unmarshal(sectionsJSON, &q.Sections)
	}
	if len(itemsJSON) > 0 {
		_ = json.Unmarshal(itemsJSON, &q.Items)
	}
	return &q, nil
}

// InsertQuote stores a new quote and returns its id.
func (db *DB) InsertQuote(ctx context.Context, q quote.Quote) (string, error) {
	sectionsJSON, err := json.Marshal(q.Sections)
	if err != nil {
		return "", err
	}
	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return "", err
	}
	var id string
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO quotes (project_id, customer_id, project_location, status, created_by_name,
		                    quote_date, sections, items, amount, notes, due_payable, payment_terms,
		                    override_subtotal, is_subtotal_overridden)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id`,
		q.ProjectID, q.CustomerID, nilIfEmpty(q.ProjectLocation), q.Status, q.CreatedByName,
		q.QuoteDate, sectionsJSON, itemsJSON, q.Amount, nilIfEmpty(q.Notes),
		nilIfEmpty(q.DuePayable), nilIfEmpty(q.PaymentTerms),
		q.OverrideSubtotal, q.IsSubtotalOverridden).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert quote: %w", err)
	}
	return id, nil
}

// UpdateQuote replaces an existing quote's editable fields.
func (db *DB) UpdateQuote(ctx context.Context, q quote.Quote) error {
	sectionsJSON, err := json.Marshal(q.Sections)
	if err != nil {
		return err
	}
	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE quotes
		SET project_id = $2, customer_id = $3, project_location = $4, status = $5,
		    created_by_name = $6, quote_date = $7, sections = $8, items = $9, amount = $10,
		    notes = $11, due_payable = $12, payment_terms = $13,
		    override_subtotal = $14, is_subtotal_overridden = $15
		WHERE id = $1`,
		q.ID, q.ProjectID, q.CustomerID, nilIfEmpty(q.ProjectLocation), q.Status,
		q.CreatedByName, q.QuoteDate, sectionsJSON, itemsJSON, q.Amount,
		nilIfEmpty(q.Notes), nilIfEmpty(q.DuePayable), nilIfEmpty(q.PaymentTerms),
		q.OverrideSubtotal, q.IsSubtotalOverridden)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update quote: no row with id %s", q.ID)
	}
	return nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
