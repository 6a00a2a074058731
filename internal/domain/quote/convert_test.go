package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(v int) *int { return &v }

func TestInitializeSectionsFromModernShape(t *testing.T) {
	q := &Quote{Sections: []PersistedSection{
		{Title: "Demolition", Items: []PersistedItem{
			{Number: "", Description: "Strip out", Price: fp(100), Qty: nil},
			{Number: "2b", Description: "Skip hire", Price: nil, Qty: ip(2)},
			{Number: "3", Description: "Free issue", Price: fp(5), Qty: ip(0)},
		}},
	}}
	sections := InitializeSections(q)
	require.Len(t, sections, 1)
	assert.Equal(t, "Demolition", sections[0].Title)
	require.Len(t, sections[0].Items, 3)

	assert.Equal(t, "1", sections[0].Items[0].Number, "missing number defaults to 1-based position")
	assert.Equal(t, 1, sections[0].Items[0].Qty, "absent qty defaults to 1")
	assert.Equal(t, "2b", sections[0].Items[1].Number)
	assert.Equal(t, 2, sections[0].Items[1].Qty)
	assert.Nil(t, sections[0].Items[1].Price)
	assert.Equal(t, 0, sections[0].Items[2].Qty, "explicit zero qty is preserved, not defaulted")

	assert.NotEmpty(t, sections[0].ID)
	assert.NotEmpty(t, sections[0].Items[0].ID)
	assert.NotEqual(t, sections[0].Items[0].ID, sections[0].Items[1].ID)
}

func TestInitializeSectionsWrapsLegacyItems(t *testing.T) {
	q := &Quote{Items: []PersistedItem{
		{Description: "Make good", Price: fp(40), Qty: ip(1)},
		{Description: "Paint", Price: fp(60), Qty: ip(3)},
	}}
	sections := InitializeSections(q)
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Title, "legacy items land in one synthetic untitled section")
	assert.Len(t, sections[0].Items, 2)
}

func TestInitializeSectionsEmptyAndNil(t *testing.T) {
	for _, q := range []*Quote{nil, {}} {
		sections := InitializeSections(q)
		require.Len(t, sections, 1)
		assert.Empty(t, sections[0].Title)
		assert.Empty(t, sections[0].Items)
	}
}

func TestSerializeStripsIDsAndFlattens(t *testing.T) {
	d := Draft{Sections: []Section{
		{ID: "s1", Title: "First fix", Items: []Item{
			{ID: "i1", Number: "1", Description: "Cabling", Price: fp(500), Qty: 1},
		}},
		{ID: "s2", Title: "Second fix", ManualPrice: fp(900), Items: []Item{
			{ID: "i2", Number: "1", Description: "Sockets", Price: nil, Qty: 4},
			{ID: "i3", Number: "2", Description: "Faceplates", Price: fp(12.5), Qty: 4},
		}},
	}}
	sections, flat := Serialize(d)

	require.Len(t, sections, 2)
	assert.Equal(t, "First fix", sections[0].Title)
	require.NotNil(t, sections[1].ManualPrice)
	assert.Equal(t, 900.0, *sections[1].ManualPrice)
	assert.Nil(t, sections[1].Items[0].Price, "nil price survives serialization as null, not zero")

	require.Len(t, flat, 3)
	assert.Equal(t, "Cabling", flat[0].Description)
	assert.Equal(t, "Sockets", flat[1].Description)
	assert.Equal(t, "Faceplates", flat[2].Description)
}

func TestSerializeInitializeRoundTripPreservesContent(t *testing.T) {
	d := Draft{Sections: []Section{
		{ID: "a", Title: "Roofing", Items: []Item{
			{ID: "x", Number: "1", Description: "Felt", Price: fp(75), Qty: 2},
			{ID: "y", Number: "2", Description: "Battens", Price: nil, Qty: 1},
			{ID: "w", Number: "3", Description: "Waste away", Price: fp(20), Qty: 0},
		}},
		{ID: "b", Title: "", ManualPrice: fp(300), Items: []Item{
			{ID: "z", Number: "1", Description: "Labour", Price: fp(150), Qty: 2},
		}},
	}}
	sections, flat := Serialize(d)
	restored := InitializeSections(&Quote{Sections: sections, Items: flat})

	require.Len(t, restored, len(d.Sections))
	for i, s := range restored {
		assert.Equal(t, d.Sections[i].Title, s.Title)
		assert.NotEqual(t, d.Sections[i].ID, s.ID, "ids are regenerated, not recycled")
		require.Len(t, s.Items, len(d.Sections[i].Items))
		for j, it := range s.Items {
			want := d.Sections[i].Items[j]
			assert.Equal(t, want.Number, it.Number)
			assert.Equal(t, want.Description, it.Description)
			assert.Equal(t, want.Qty, it.Qty, "qty round-trips exactly, zero included")
			if want.Price == nil {
				assert.Nil(t, it.Price)
			} else {
				require.NotNil(t, it.Price)
				assert.Equal(t, *want.Price, *it.Price)
			}
		}
	}
}

func TestDraftFromQuoteRestoresOverride(t *testing.T) {
	q := &Quote{
		IsSubtotalOverridden: true,
		OverrideSubtotal:     fp(50),
		Sections: []PersistedSection{
			{Items: []PersistedItem{{Price: fp(10), Qty: ip(2)}}},
		},
	}
	d := DraftFromQuote(q)
	assert.True(t, d.OverrideSubtotal)
	assert.Equal(t, 50.0, d.ManualSubtotal)
	assert.Equal(t, 50.0, Subtotal(d))
}
