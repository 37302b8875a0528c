package bill

import (
	"strings"

	"github.com/google/uuid"

	"github.com/singharoy/gst-invoice/internal/models"
)

// NewBlankItem creates an empty row with a fresh id, the default GST
// split, and quantity preset to 1.
func NewBlankItem() models.BillItem {
	quantity := 1.0
	cgst := models.DefaultCGSTPercent
	sgst := models.DefaultSGSTPercent
	return models.BillItem{
		ID:          uuid.NewString(),
		Quantity:    &quantity,
		CGSTPercent: &cgst,
		SGSTPercent: &sgst,
	}
}

// IsBlank reports whether the row carries no meaningful input. Quantity
// is excluded from the test because it defaults to 1.
func IsBlank(item models.BillItem) bool {
	return strings.TrimSpace(item.Description) == "" &&
		strings.TrimSpace(item.HSNSAC) == "" &&
		(item.Rate == nil || *item.Rate == 0)
}

// IsFilled reports whether the row has any meaningful input.
func IsFilled(item models.BillItem) bool {
	return strings.TrimSpace(item.Description) != "" ||
		strings.TrimSpace(item.HSNSAC) != "" ||
		(item.Rate != nil && *item.Rate > 0)
}

// NormalizeRows enforces the table shape after every edit: the list is
// never empty, and it ends in exactly one blank row. Filled rows are
// never removed. The input slice is not mutated; a new slice is returned
// only when a change is needed.
func NormalizeRows(items []models.BillItem) []models.BillItem {
	if len(items) == 0 {
		return []models.BillItem{NewBlankItem()}
	}

	if IsFilled(items[len(items)-1]) {
		out := make([]models.BillItem, len(items), len(items)+1)
		copy(out, items)
		return append(out, NewBlankItem())
	}

	// Last row is blank: drop any extra trailing blanks, keeping one
	// blank row after the last filled row. lastFilled is -1 when every
	// row is blank, which collapses the list to a single blank row.
	lastFilled := len(items) - 1
	for lastFilled >= 0 && IsBlank(items[lastFilled]) {
		lastFilled--
	}
	if keep := lastFilled + 2; keep < len(items) {
		out := make([]models.BillItem, keep)
		copy(out, items[:keep])
		return out
	}

	return items
}
