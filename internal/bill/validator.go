package bill

import (
	"strings"

	"github.com/singharoy/gst-invoice/internal/models"
)

// Validator field keys. The error map returned by Validate is keyed by
// this closed set.
const (
	FieldInvoiceNumber    = "invoiceNumber"
	FieldCustomerName     = "customerName"
	FieldCustomerAddress1 = "customerAddress1"
	FieldCustomerCity     = "customerCity"
	FieldCustomerState    = "customerState"
	FieldBillItems        = "billItems"
)

// FieldErrors maps validator field keys to user-facing messages.
// An empty map means the bill may be exported.
type FieldErrors map[string]string

// ClearedBy states which validation errors each kind of edit clears.
// The form collaborator drops the listed keys from its error map when
// the corresponding field group changes.
var ClearedBy = map[string][]string{
	"invoiceNumber":    {FieldInvoiceNumber},
	"customerName":     {FieldCustomerName},
	"customerAddress1": {FieldCustomerAddress1},
	"customerCity":     {FieldCustomerCity},
	"customerState":    {FieldCustomerState},
	"items":            {FieldBillItems},
}

// Validate checks the assembled bill against the required-field rules.
// All rules are evaluated; nothing short-circuits.
func Validate(data models.BillData) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(data.InvoiceNumber) == "" {
		errs[FieldInvoiceNumber] = "Invoice number is required"
	}
	if strings.TrimSpace(data.CustomerDetails.Name) == "" {
		errs[FieldCustomerName] = "Customer name is required"
	}
	if strings.TrimSpace(data.CustomerDetails.Address.Line1) == "" {
		errs[FieldCustomerAddress1] = "Address line 1 is required"
	}
	if strings.TrimSpace(data.CustomerDetails.Address.City) == "" {
		errs[FieldCustomerCity] = "City is required"
	}
	if strings.TrimSpace(data.CustomerDetails.Address.State) == "" {
		errs[FieldCustomerState] = "State is required"
	}

	hasItems := false
	for _, item := range data.Items {
		if strings.TrimSpace(item.Description) != "" ||
			strings.TrimSpace(item.HSNSAC) != "" ||
			(item.Quantity != nil && *item.Quantity > 0) {
			hasItems = true
			break
		}
	}
	if !hasItems {
		errs[FieldBillItems] = "At least one bill item is required"
	}

	return errs
}
