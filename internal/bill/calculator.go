// Package bill holds the computation core of the invoice builder:
// per-row tax derivation, aggregate totals, the trailing-blank-row
// policy, and export validation.
package bill

import "github.com/singharoy/gst-invoice/internal/models"

// Calculate derives the taxable value, CGST/SGST amounts, and line total
// for every item, plus the aggregate totals. Nil numeric fields count as
// zero, so the function is total over any item list. No rounding happens
// here; rounding is a display concern.
func Calculate(items []models.BillItem) ([]models.BillItemCalculated, models.BillTotals) {
	calculated := make([]models.BillItemCalculated, 0, len(items))
	var totals models.BillTotals

	for _, item := range items {
		quantity := valueOrZero(item.Quantity)
		rate := valueOrZero(item.Rate)
		cgstPercent := valueOrZero(item.CGSTPercent)
		sgstPercent := valueOrZero(item.SGSTPercent)

		taxableValue := quantity * rate
		cgstAmount := taxableValue * cgstPercent / 100
		sgstAmount := taxableValue * sgstPercent / 100
		totalAmount := taxableValue + cgstAmount + sgstAmount

		calculated = append(calculated, models.BillItemCalculated{
			BillItem:     item,
			TaxableValue: taxableValue,
			CGSTAmount:   cgstAmount,
			SGSTAmount:   sgstAmount,
			TotalAmount:  totalAmount,
		})

		totals.TotalTaxableValue += taxableValue
		totals.TotalCGST += cgstAmount
		totals.TotalSGST += sgstAmount
		totals.GrandTotal += totalAmount
	}

	return calculated, totals
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
