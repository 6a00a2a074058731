package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func twoSectionDraft() Draft {
	return Draft{Sections: []Section{
		{ID: "s1", Items: []Item{{ID: "i1", Number: "1", Price: fp(10), Qty: 2}}},
		{ID: "s2", Items: []Item{{ID: "i2", Number: "1", Price: fp(5), Qty: 1}}},
	}}
}

func TestSubtotalSumsSections(t *testing.T) {
	d := twoSectionDraft()
	assert.Equal(t, 20.0, SectionSubtotal(d.Sections[0]))
	assert.Equal(t, 5.0, SectionSubtotal(d.Sections[1]))
	assert.Equal(t, 25.0, Subtotal(d))
	assert.Equal(t, 25.0, Total(d))
}

func TestTotalWithVAT(t *testing.T) {
	d := twoSectionDraft()
	d.IncludeVAT = true
	assert.InDelta(t, 30.0, Total(d), 1e-9)
}

func TestSectionManualPriceOverridesItems(t *testing.T) {
	d := twoSectionDraft()
	d.Sections[0].ManualPrice = fp(100)
	assert.Equal(t, 100.0, SectionSubtotal(d.Sections[0]))
	assert.Equal(t, 105.0, Subtotal(d))
}

func TestManualSubtotalOverridesEverything(t *testing.T) {
	d := twoSectionDraft()
	d.OverrideSubtotal = true
	d.ManualSubtotal = 50
	assert.Equal(t, 50.0, Subtotal(d))

	d.IncludeVAT = true
	assert.InDelta(t, 60.0, Total(d), 1e-9)
}

func TestNilPriceCountsAsZeroNotPriced(t *testing.T) {
	s := Section{Items: []Item{
		{Price: nil, Qty: 3},
		{Price: fp(0), Qty: 3},
		{Price: fp(2.5), Qty: 2},
	}}
	assert.Equal(t, 5.0, SectionSubtotal(s))
}

func TestZeroManualPriceStillOverrides(t *testing.T) {
	s := Section{ManualPrice: fp(0), Items: []Item{{Price: fp(10), Qty: 1}}}
	assert.Equal(t, 0.0, SectionSubtotal(s))
}

func TestSubtotalEqualsSumOfSectionSubtotals(t *testing.T) {
	d := twoSectionDraft()
	d.Sections[1].ManualPrice = fp(7.25)
	var sum float64
	for _, s := range d.Sections {
		sum += SectionSubtotal(s)
	}
	assert.Equal(t, sum, Subtotal(d))
}
