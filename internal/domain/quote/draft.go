package quote

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Item is one priced line within a section. Price nil means "not yet
// priced" and is distinct from a price of zero.
type Item struct {
	ID          string   `json:"id"`
	Number      string   `json:"number"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Qty         int      `json:"qty"`
}

// Section groups ordered items under an optional title. A non-nil
// ManualPrice overrides the sum of the section's items.
type Section struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Items       []Item   `json:"items"`
	ManualPrice *float64 `json:"manualPrice"`
}

// Draft is the in-memory working state of one quote edit session. All
// mutations are value-in/value-out: each returns a new Draft derived
// from the receiver, so callers hold immutable snapshots.
type Draft struct {
	Sections         []Section
	OverrideSubtotal bool
	ManualSubtotal   float64
	IncludeVAT       bool
}

// Field names accepted by UpdateItem.
const (
	FieldNumber      = "number"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldQty         = "qty"
)

func newID() string { return uuid.NewString() }

// NewDraft returns a draft with one empty untitled section.
func NewDraft() Draft {
	return Draft{Sections: []Section{{ID: newID(), Title: "", Items: []Item{}}}}
}

func cloneSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Items = make([]Item, len(s.Items))
		copy(out[i].Items, s.Items)
	}
	return out
}

func (d Draft) clone() Draft {
	d.Sections = cloneSections(d.Sections)
	return d
}

// AddSection appends a new empty section.
func (d Draft) AddSection() Draft {
	next := d.clone()
	next.Sections = append(next.Sections, Section{ID: newID(), Title: "", Items: []Item{}})
	return next
}

// UpdateSectionTitle replaces the title of the matching section. Unknown
// ids are a no-op: sections may be deleted while an edit is in flight.
func (d Draft) UpdateSectionTitle(sectionID, title string) Draft {
	next := d.clone()
	for i := range next.Sections {
		if next.Sections[i].ID == sectionID {
			next.Sections[i].Title = title
		}
	}
	return next
}

// SetSectionManualPrice sets or clears the section price override.
func (d Draft) SetSectionManualPrice(sectionID string, price *float64) Draft {
	next := d.clone()
	for i := range next.Sections {
		if next.Sections[i].ID == sectionID {
			if price == nil {
				next.Sections[i].ManualPrice = nil
			} else {
				v := *price
				next.Sections[i].ManualPrice = &v
			}
		}
	}
	return next
}

// RemoveSection deletes the section and all its items. Warning the user
// about data loss is the caller's job; the store deletes unconditionally.
func (d Draft) RemoveSection(sectionID string) Draft {
	next := d.clone()
	kept := next.Sections[:0]
	for _, s := range next.Sections {
		if s.ID != sectionID {
			kept = append(kept, s)
		}
	}
	next.Sections = kept
	return next
}

// AddItem appends a new unpriced item to the section, numbered after the
// current item count.
func (d Draft) AddItem(sectionID string) Draft {
	next := d.clone()
	for i := range next.Sections {
		if next.Sections[i].ID == sectionID {
			next.Sections[i].Items = append(next.Sections[i].Items, Item{
				ID:     newID(),
				Number: strconv.Itoa(len(next.Sections[i].Items) + 1),
				Price:  nil,
				Qty:    1,
			})
		}
	}
	return next
}

// UpdateItem sets a single field from its raw form value. Price coercion
// is forgiving: an empty or non-numeric value becomes nil, never zero.
func (d Draft) UpdateItem(sectionID, itemID, field, value string) Draft {
	next := d.clone()
	for i := range next.Sections {
		if next.Sections[i].ID != sectionID {
			continue
		}
		for j := range next.Sections[i].Items {
			if next.Sections[i].Items[j].ID != itemID {
				continue
			}
			it := &next.Sections[i].Items[j]
			switch field {
			case FieldNumber:
				it.Number = value
			case FieldDescription:
				it.Description = value
			case FieldPrice:
				it.Price = parsePrice(value)
			case FieldQty:
				n, err := strconv.Atoi(strings.TrimSpace(value))
				if err != nil || n < 0 {
					n = 0
				}
				it.Qty = n
			}
		}
	}
	return next
}

// RemoveItem deletes the item from the section; unknown ids are a no-op.
func (d Draft) RemoveItem(sectionID, itemID string) Draft {
	next := d.clone()
	for i := range next.Sections {
		if next.Sections[i].ID != sectionID {
			continue
		}
		kept := next.Sections[i].Items[:0]
		for _, it := range next.Sections[i].Items {
			if it.ID != itemID {
				kept = append(kept, it)
			}
		}
		next.Sections[i].Items = kept
	}
	return next
}

// MoveItem removes the item from the source section and appends it, same
// id and fields, to the destination. Same-section moves and missing items
// silently do nothing; an item is never duplicated or orphaned.
func (d Draft) MoveItem(itemID, fromSectionID, toSectionID string) Draft {
	if fromSectionID == toSectionID {
		return d
	}
	dest := -1
	for i := range d.Sections {
		if d.Sections[i].ID == toSectionID {
			dest = i
		}
	}
	if dest == -1 {
		return d
	}
	next := d.clone()

	var moved *Item
	for i := range next.Sections {
		if next.Sections[i].ID != fromSectionID {
			continue
		}
		kept := next.Sections[i].Items[:0]
		for _, it := range next.Sections[i].Items {
			if it.ID == itemID && moved == nil {
				m := it
				moved = &m
				continue
			}
			kept = append(kept, it)
		}
		next.Sections[i].Items = kept
	}
	if moved == nil {
		return next
	}
	next.Sections[dest].Items = append(next.Sections[dest].Items, *moved)
	return next
}

func parsePrice(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	// ParseFloat accepts "nan" and "inf" spellings; neither is a price.
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
