package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/singharoy/gst-invoice/internal/bill"
	"github.com/singharoy/gst-invoice/internal/models"
)

func ptr(v float64) *float64 { return &v }

func sampleBill(t *testing.T) models.BillData {
	t.Helper()

	items := []models.BillItem{
		{ID: "a", Description: "Widget", HSNSAC: "1234", Quantity: ptr(2), Rate: ptr(100), CGSTPercent: ptr(9), SGSTPercent: ptr(9)},
	}
	items = bill.NormalizeRows(items)
	require.Len(t, items, 2) // trailing blank auto-appended

	calculated, totals := bill.Calculate(items)

	return models.BillData{
		InvoiceNumber:   "INV-042",
		Date:            time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
		BusinessDetails: models.DefaultBusinessDetails(),
		CustomerDetails: models.CustomerDetails{
			Name: "Acme Traders",
			Address: models.Address{
				Line1: "12 Market Road",
				City:  "Kolkata",
				Pin:   "700001",
				State: "West Bengal",
			},
		},
		Items:  calculated,
		Totals: totals,
	}
}

func findTable(t *testing.T, def *Definition) Table {
	t.Helper()
	for _, node := range def.Content {
		if table, ok := node.(Table); ok {
			return table
		}
	}
	t.Fatal("document has no table")
	return Table{}
}

func TestFormatPageSetup(t *testing.T) {
	def := Format(sampleBill(t))

	assert.Equal(t, "A4", def.PageSize)
	assert.Equal(t, Margins{Left: 40, Top: 40, Right: 40, Bottom: 40}, def.PageMargins)
	assert.Equal(t, 9.0, def.DefaultFontSize)
	assert.Len(t, def.Content, 5)
}

func TestFormatFiltersBlankRows(t *testing.T) {
	def := Format(sampleBill(t))
	table := findTable(t, def)

	// One item row plus the totals row; the auto-appended blank row
	// never reaches the printed table.
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Widget", table.Rows[0][1].Text)
}

func TestFormatTableColumnOrder(t *testing.T) {
	def := Format(sampleBill(t))
	table := findTable(t, def)

	headers := make([]string, len(table.Header))
	for i, cell := range table.Header {
		headers[i] = cell.Text
	}

	assert.Equal(t, []string{
		"S.No", "Description of Goods", "HSN/SAC", "Qty", "Rate",
		"Taxable Value", "CGST", "SGST", "Amount",
	}, headers)
	assert.Len(t, table.Widths, 9)
}

func TestFormatItemRowValues(t *testing.T) {
	def := Format(sampleBill(t))
	row := findTable(t, def).Rows[0]

	assert.Equal(t, "1", row[0].Text)
	assert.Equal(t, "1234", row[2].Text)
	assert.Equal(t, "2.00", row[3].Text)
	assert.Equal(t, "100.00", row[4].Text)
	assert.Equal(t, "200.00", row[5].Text)
	assert.Equal(t, "18.00\n(9%)", row[6].Text)
	assert.Equal(t, "18.00\n(9%)", row[7].Text)
	assert.Equal(t, "236.00", row[8].Text)
	assert.True(t, row[8].Bold)
}

func TestFormatTotalsRow(t *testing.T) {
	def := Format(sampleBill(t))
	rows := findTable(t, def).Rows
	totals := rows[len(rows)-1]

	// Blank span under the first five columns, then the four totals.
	require.Len(t, totals, 5)
	assert.Equal(t, 5, totals[0].Span)
	assert.Empty(t, totals[0].Text)

	assert.Equal(t, "200.00", totals[1].Text)
	assert.Equal(t, "18.00", totals[2].Text)
	assert.Equal(t, "18.00", totals[3].Text)
	assert.Equal(t, "236.00", totals[4].Text)
	for _, cell := range totals[1:] {
		assert.True(t, cell.Bold)
	}
}

func TestFormatHeaderBlock(t *testing.T) {
	def := Format(sampleBill(t))

	header, ok := def.Content[0].(Columns)
	require.True(t, ok)
	require.Len(t, header.Cols, 2)

	name, ok := header.Cols[0].Nodes[0].(Text)
	require.True(t, ok)
	assert.Equal(t, "SINGHA ROY ENTERPRISE", name.Value)
	assert.True(t, name.Bold)

	number, ok := header.Cols[1].Nodes[0].(Text)
	require.True(t, ok)
	assert.Equal(t, "INVOICE NO: INV-042", number.Value)

	date, ok := header.Cols[1].Nodes[1].(Text)
	require.True(t, ok)
	assert.Equal(t, "Date: 07-04-2025", date.Value)
}

func TestFormatAmountInWordsBlock(t *testing.T) {
	def := Format(sampleBill(t))

	block, ok := def.Content[3].(Stack)
	require.True(t, ok)
	require.Len(t, block.Nodes, 2)

	label := block.Nodes[0].(Text)
	assert.Equal(t, "Amount Chargeable (in words):", label.Value)

	amount := block.Nodes[1].(Text)
	assert.Equal(t, "INR Two Hundred Thirty Six Only", amount.Value)
	assert.True(t, amount.Italic)
}

func TestFormatSignatureBlock(t *testing.T) {
	def := Format(sampleBill(t))

	sig, ok := def.Content[4].(Columns)
	require.True(t, ok)
	require.Len(t, sig.Cols, 2)

	forLine := sig.Cols[1].Nodes[0].(Text)
	assert.Equal(t, "For - SINGHA ROY ENTERPRISE", forLine.Value)
	assert.Equal(t, AlignRight, forLine.Align)

	signed := sig.Cols[1].Nodes[1].(Text)
	assert.Equal(t, "Authorized Signature", signed.Value)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name          string
		invoiceNumber string
		ext           string
		expected      string
	}{
		{name: "numbered invoice", invoiceNumber: "INV-042", ext: "pdf", expected: "Invoice_INV-042.pdf"},
		{name: "draft fallback", invoiceNumber: "", ext: "pdf", expected: "Invoice_draft.pdf"},
		{name: "xlsx extension", invoiceNumber: "7", ext: "xlsx", expected: "Invoice_7.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := models.BillData{InvoiceNumber: tt.invoiceNumber}
			assert.Equal(t, tt.expected, FileName(data, tt.ext))
		})
	}
}
