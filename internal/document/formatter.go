package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/singharoy/gst-invoice/internal/models"
	"github.com/singharoy/gst-invoice/internal/words"
	"github.com/singharoy/gst-invoice/pkg/format"
)

// FileName returns the download name for an exported invoice.
func FileName(data models.BillData, ext string) string {
	number := data.InvoiceNumber
	if number == "" {
		number = "draft"
	}
	return fmt.Sprintf("Invoice_%s.%s", number, ext)
}

// Format maps a fully computed bill into a document description.
// Deterministic; rows that are entirely blank never reach the printed
// table even though they were part of the totals calculation (a blank
// row contributes zero to every total).
func Format(data models.BillData) *Definition {
	printable := printableItems(data.Items)

	content := []Node{
		headerBlock(data),
		addressBlock(data),
		itemsTable(printable, data.Totals),
		amountInWordsBlock(data.Totals),
		signatureBlock(data.BusinessDetails),
	}

	return &Definition{
		PageSize:        "A4",
		PageMargins:     Margins{Left: 40, Top: 40, Right: 40, Bottom: 40},
		DefaultFontSize: 9,
		Content:         content,
	}
}

func printableItems(items []models.BillItemCalculated) []models.BillItemCalculated {
	out := make([]models.BillItemCalculated, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Description) != "" ||
			strings.TrimSpace(item.HSNSAC) != "" ||
			item.TaxableValue > 0 {
			out = append(out, item)
		}
	}
	return out
}

func headerBlock(data models.BillData) Node {
	b := data.BusinessDetails
	contact := strings.Join(b.Phones, ", ") + "\n" + b.Email + "\nGST No: " + b.GSTNo

	return Columns{
		Cols: []Column{
			{Nodes: []Node{
				Text{Value: b.Name, FontSize: 18, Bold: true, SpaceAfter: 5},
				Text{Value: contact, FontSize: 9},
			}},
			{Width: 160, Nodes: []Node{
				Text{Value: "INVOICE NO: " + data.InvoiceNumber, FontSize: 12, Bold: true, Align: AlignRight, SpaceAfter: 5},
				Text{Value: "Date: " + format.Date(data.Date), FontSize: 10, Align: AlignRight},
			}},
		},
		SpaceAfter: 20,
	}
}

func addressBlock(data models.BillData) Node {
	c := data.CustomerDetails
	b := data.BusinessDetails

	customerLines := []string{c.Address.Line1, c.Address.Line2}
	if c.Address.Pin != "" {
		customerLines = append(customerLines, c.Address.City+" - "+c.Address.Pin)
	} else {
		customerLines = append(customerLines, c.Address.City)
	}
	customerLines = append(customerLines, c.Address.State)

	billTo := []Node{
		Text{Value: "Bill To:", FontSize: 10, Bold: true, SpaceAfter: 5},
		Text{Value: c.Name, Bold: true, SpaceAfter: 3},
		Text{Value: joinNonEmpty(customerLines), FontSize: 9},
	}
	if c.Phone != "" {
		billTo = append(billTo, Text{Value: "Phone: " + c.Phone, FontSize: 9, SpaceAfter: 3})
	}
	if c.GSTNo != "" {
		billTo = append(billTo, Text{Value: "GST No: " + c.GSTNo, FontSize: 9, SpaceAfter: 3})
	}

	businessLines := []string{
		b.Address.Line1,
		b.Address.Line2,
		b.Address.City + " - " + b.Address.Pin,
		b.Address.State,
	}
	from := []Node{
		Text{Value: "From:", FontSize: 10, Bold: true, SpaceAfter: 5},
		Text{Value: b.Name, Bold: true, SpaceAfter: 3},
		Text{Value: joinNonEmpty(businessLines), FontSize: 9},
		Text{Value: "Phone: " + strings.Join(b.Phones, ", "), FontSize: 9, SpaceAfter: 3},
		Text{Value: "Email: " + b.Email, FontSize: 9, SpaceAfter: 3},
		Text{Value: "GST No: " + b.GSTNo, FontSize: 9, SpaceAfter: 3},
	}

	return Columns{
		Cols: []Column{
			{Nodes: billTo},
			{Nodes: from},
		},
		SpaceAfter: 20,
	}
}

func itemsTable(items []models.BillItemCalculated, totals models.BillTotals) Node {
	header := []Cell{
		{Text: "S.No", Bold: true, FontSize: 8, Align: AlignCenter, Fill: "#f0f0f0"},
		{Text: "Description of Goods", Bold: true, FontSize: 8, Fill: "#f0f0f0"},
		{Text: "HSN/SAC", Bold: true, FontSize: 8, Align: AlignCenter, Fill: "#f0f0f0"},
		{Text: "Qty", Bold: true, FontSize: 8, Align: AlignRight, Fill: "#f0f0f0"},
		{Text: "Rate", Bold: true, FontSize: 8, Align: AlignRight, Fill: "#f0f0f0"},
		{Text: "Taxable Value", Bold: true, FontSize: 8, Align: AlignRight, Fill: "#f0f0f0"},
		{Text: "CGST", Bold: true, FontSize: 8, Align: AlignRight, Fill: "#f0f0f0"},
		{Text: "SGST", Bold: true, FontSize: 8, Align: AlignRight, Fill: "#f0f0f0"},
		{Text: "Amount", Bold: true, FontSize: 8, Align: AlignRight, Fill: "#f0f0f0"},
	}

	rows := make([][]Cell, 0, len(items)+1)
	for i, item := range items {
		rows = append(rows, []Cell{
			{Text: strconv.Itoa(i + 1), Align: AlignCenter},
			{Text: item.Description},
			{Text: item.HSNSAC, Align: AlignCenter},
			{Text: quantityText(item.Quantity), Align: AlignRight},
			{Text: format.Number(rateOrZero(item.Rate)), Align: AlignRight},
			{Text: format.Number(item.TaxableValue), Align: AlignRight},
			{Text: taxCellText(item.CGSTAmount, item.CGSTPercent), Align: AlignRight, FontSize: 8},
			{Text: taxCellText(item.SGSTAmount, item.SGSTPercent), Align: AlignRight, FontSize: 8},
			{Text: format.Number(item.TotalAmount), Align: AlignRight, Bold: true},
		})
	}

	rows = append(rows, []Cell{
		{Span: 5},
		{Text: format.Number(totals.TotalTaxableValue), Align: AlignRight, Bold: true},
		{Text: format.Number(totals.TotalCGST), Align: AlignRight, Bold: true},
		{Text: format.Number(totals.TotalSGST), Align: AlignRight, Bold: true},
		{Text: format.Number(totals.GrandTotal), Align: AlignRight, Bold: true},
	})

	return Table{
		Widths:     []float64{25, 0, 50, 35, 55, 65, 55, 55, 65},
		Header:     header,
		Rows:       rows,
		SpaceAfter: 20,
	}
}

func amountInWordsBlock(totals models.BillTotals) Node {
	// The grand total is rounded to the rupee before conversion, so the
	// printed words never disagree with the printed figures over paise.
	rounded := math.Round(totals.GrandTotal)
	return Stack{
		Nodes: []Node{
			Text{Value: "Amount Chargeable (in words):", Bold: true, FontSize: 9},
			Text{Value: words.AmountInWords(rounded), FontSize: 10, Italic: true},
		},
		SpaceAfter: 40,
	}
}

func signatureBlock(business models.BusinessDetails) Node {
	return Columns{
		Cols: []Column{
			{Nodes: nil},
			{Width: 180, Nodes: []Node{
				Text{Value: "For - " + business.Name, Align: AlignRight, SpaceAfter: 40},
				Text{Value: "Authorized Signature", Align: AlignRight},
			}},
		},
	}
}

func quantityText(q *float64) string {
	if q == nil {
		return format.Number(0)
	}
	return format.Number(*q)
}

func rateOrZero(r *float64) float64 {
	if r == nil {
		return 0
	}
	return *r
}

func taxCellText(amount float64, percent *float64) string {
	p := 0.0
	if percent != nil {
		p = *percent
	}
	return format.Number(amount) + "\n(" + strconv.FormatFloat(p, 'f', -1, 64) + "%)"
}

func joinNonEmpty(lines []string) string {
	out := lines[:0:0]
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
