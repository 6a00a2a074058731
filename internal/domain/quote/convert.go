package quote

import "strconv"

// InitializeSections builds the editable section list from a persisted
// quote. A quote with a non-empty modern sections field is deep-copied
// with fresh ids; a legacy flat items list is wrapped in one untitled
// section; anything else yields a single empty section. Malformed or
// missing fields degrade to defaults rather than failing: the source may
// predate schema changes.
func InitializeSections(q *Quote) []Section {
	if q != nil && len(q.Sections) > 0 {
		out := make([]Section, len(q.Sections))
		for i, ps := range q.Sections {
			out[i] = Section{
				ID:          newID(),
				Title:       ps.Title,
				Items:       copyItems(ps.Items),
				ManualPrice: copyPrice(ps.ManualPrice),
			}
		}
		return out
	}
	if q != nil && len(q.Items) > 0 {
		return []Section{{
			ID:    newID(),
			Title: "",
			Items: copyItems(q.Items),
		}}
	}
	return []Section{{ID: newID(), Title: "", Items: []Item{}}}
}

func copyItems(items []PersistedItem) []Item {
	out := make([]Item, len(items))
	for i, pi := range items {
		number := pi.Number
		if number == "" {
			number = strconv.Itoa(i + 1)
		}
		out[i] = Item{
			ID:          newID(),
			Number:      number,
			Description: pi.Description,
			Price:       copyPrice(pi.Price),
			Qty:         pi.Quantity(),
		}
	}
	return out
}

func copyPrice(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Serialize strips editing ids and produces both persisted shapes: the
// sectioned representation and the flattened legacy item list. Section
// boundaries and titles are lost in the flat list by design.
func Serialize(d Draft) (sections []PersistedSection, flat []PersistedItem) {
	sections = make([]PersistedSection, len(d.Sections))
	flat = make([]PersistedItem, 0)
	for i, s := range d.Sections {
		items := make([]PersistedItem, len(s.Items))
		for j, it := range s.Items {
			qty := it.Qty
			items[j] = PersistedItem{
				Number:      it.Number,
				Description: it.Description,
				Price:       copyPrice(it.Price),
				Qty:         &qty,
			}
		}
		sections[i] = PersistedSection{
			Title:       s.Title,
			Items:       items,
			ManualPrice: copyPrice(s.ManualPrice),
		}
		flat = append(flat, items...)
	}
	return sections, flat
}

// DraftFromQuote builds a full editing draft for a persisted quote (or a
// fresh one when q is nil), restoring the subtotal override flags.
func DraftFromQuote(q *Quote) Draft {
	d := Draft{Sections: InitializeSections(q)}
	if q != nil {
		d.OverrideSubtotal = q.IsSubtotalOverridden
		if q.OverrideSubtotal != nil {
			d.ManualSubtotal = *q.OverrideSubtotal
		}
		// includeVat is not stored; the original infers it from the saved
		// amount exceeding the computed subtotal.
		d.IncludeVAT = q.Amount > Subtotal(d)
	}
	return d
}
