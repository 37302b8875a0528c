// Package models defines the bill data model shared across the
// calculation, validation, and rendering layers.
package models

import "time"

// Address is an Indian postal address. Pin is optional for customers
// and required for the business record.
type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city"`
	Pin   string `json:"pin"`
	State string `json:"state"`
}

// BusinessDetails is the issuing business. Loaded once at startup from
// the store (or the hard-coded default) and replaced wholesale on save.
type BusinessDetails struct {
	Name    string   `json:"name"`
	Phones  []string `json:"phones"`
	Email   string   `json:"email"`
	GSTNo   string   `json:"gstNo"`
	Address Address  `json:"address"`
}

// CustomerDetails is the party being billed. Reset per invoice session.
type CustomerDetails struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
	Phone   string  `json:"phone,omitempty"`
	GSTNo   string  `json:"gstNo,omitempty"`
}

// BillItem is one editable row of the invoice table. Numeric fields are
// pointers so that cleared or malformed input arrives as nil and is
// treated as zero by the calculator.
type BillItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	HSNSAC      string   `json:"hsnSac"`
	Quantity    *float64 `json:"quantity"`
	Rate        *float64 `json:"rate"`
	CGSTPercent *float64 `json:"cgstPercent"`
	SGSTPercent *float64 `json:"sgstPercent"`
}

// BillItemCalculated is a BillItem plus its derived amounts. Derived
// fields are always recomputed, never stored.
type BillItemCalculated struct {
	BillItem
	TaxableValue float64 `json:"taxableValue"`
	CGSTAmount   float64 `json:"cgstAmount"`
	SGSTAmount   float64 `json:"sgstAmount"`
	TotalAmount  float64 `json:"totalAmount"`
}

// BillTotals are element-wise sums of the derived item amounts.
type BillTotals struct {
	TotalTaxableValue float64 `json:"totalTaxableValue"`
	TotalCGST         float64 `json:"totalCgst"`
	TotalSGST         float64 `json:"totalSgst"`
	GrandTotal        float64 `json:"grandTotal"`
}

// BillData is the full snapshot assembled at export time.
type BillData struct {
	InvoiceNumber   string               `json:"invoiceNumber"`
	Date            time.Time            `json:"date"`
	BusinessDetails BusinessDetails      `json:"businessDetails"`
	CustomerDetails CustomerDetails      `json:"customerDetails"`
	Items           []BillItemCalculated `json:"items"`
	Totals          BillTotals           `json:"totals"`
}
