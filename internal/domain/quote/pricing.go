package quote

// VATRate is the flat UK VAT surcharge applied when a draft includes VAT.
const VATRate = 0.20

// SectionSubtotal is the manual price when set, otherwise the sum of
// price*qty over the section's items. A nil price counts as zero.
func SectionSubtotal(s Section) float64 {
	if s.ManualPrice != nil {
		return *s.ManualPrice
	}
	var sum float64
	for _, it := range s.Items {
		if it.Price != nil {
			sum += *it.Price * float64(it.Qty)
		}
	}
	return sum
}

// Subtotal is the manual subtotal when overridden, otherwise the sum of
// section subtotals.
func Subtotal(d Draft) float64 {
	if d.OverrideSubtotal {
		return d.ManualSubtotal
	}
	var total float64
	for _, s := range d.Sections {
		total += SectionSubtotal(s)
	}
	return total
}

// Total applies the VAT surcharge to the subtotal when included.
func Total(d Draft) float64 {
	sub := Subtotal(d)
	if d.IncludeVAT {
		return sub * (1 + VATRate)
	}
	return sub
}
