// Package handlers exposes the bill engine over HTTP for the browser
// form client.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/singharoy/gst-invoice/internal/bill"
	"github.com/singharoy/gst-invoice/internal/document"
	"github.com/singharoy/gst-invoice/internal/export"
	"github.com/singharoy/gst-invoice/internal/models"
	"github.com/singharoy/gst-invoice/internal/pdf"
	"github.com/singharoy/gst-invoice/internal/repository"
)

// BillHandler serves calculation, validation, and export requests.
type BillHandler struct {
	businessRepo *repository.BusinessRepository
	renderer     *pdf.Renderer
	excelWriter  *export.ExcelWriter
	logger       *zap.Logger
}

// NewBillHandler creates a bill handler.
func NewBillHandler(
	businessRepo *repository.BusinessRepository,
	renderer *pdf.Renderer,
	excelWriter *export.ExcelWriter,
	logger *zap.Logger,
) *BillHandler {
	return &BillHandler{
		businessRepo: businessRepo,
		renderer:     renderer,
		excelWriter:  excelWriter,
		logger:       logger,
	}
}

// ItemsRequest carries the editable item list.
type ItemsRequest struct {
	Items []models.BillItem `json:"items"`
}

// BillRequest is the client-side bill state submitted for validation
// or export. Date uses the HTML date input format (YYYY-MM-DD); an
// empty date means today.
type BillRequest struct {
	InvoiceNumber   string                 `json:"invoiceNumber"`
	Date            string                 `json:"date"`
	CustomerDetails models.CustomerDetails `json:"customerDetails"`
	Items           []models.BillItem      `json:"items"`
}

// ReverseRequest asks for a GST breakdown of an inclusive total.
type ReverseRequest struct {
	Total       float64 `json:"total"`
	CGSTPercent float64 `json:"cgstPercent"`
	SGSTPercent float64 `json:"sgstPercent"`
}

// NormalizeItems applies the trailing-blank-row policy to the posted
// list and returns the well-formed list.
func (h *BillHandler) NormalizeItems(c *gin.Context) {
	var req ItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": bill.NormalizeRows(req.Items)})
}

// Calculate derives per-item amounts and totals for the posted list.
func (h *BillHandler) Calculate(c *gin.Context) {
	var req ItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	calculated, totals := bill.Calculate(req.Items)
	c.JSON(http.StatusOK, gin.H{
		"calculatedItems": calculated,
		"totals":          totals,
	})
}

// Validate runs the export gate and always responds 200 with the field
// error map; an empty map means the bill may be exported.
func (h *BillHandler) Validate(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	data := h.assembleBill(c, req)
	errs := bill.Validate(data)
	c.JSON(http.StatusOK, gin.H{
		"errors": errs,
		"valid":  len(errs) == 0,
	})
}

// ReverseGST splits a GST-inclusive total into taxable value and taxes.
func (h *BillHandler) ReverseGST(c *gin.Context) {
	var req ReverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	breakdown, err := bill.Reverse(req.Total, req.CGSTPercent, req.SGSTPercent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// ExportPDF validates the bill and streams the rendered invoice.
// Validation failures are 422 with the field error map; rendering
// failures are a generic 500 with no partial file.
func (h *BillHandler) ExportPDF(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	data := h.assembleBill(c, req)
	if errs := bill.Validate(data); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	output, err := h.renderer.Render(document.Format(data))
	if err != nil {
		h.logger.Error("Invoice PDF generation failed",
			zap.String("invoice_number", data.InvoiceNumber),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate invoice"})
		return
	}

	fileName := document.FileName(data, "pdf")
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", output)
}

// ExportXLSX validates the bill and streams the spreadsheet rendition.
func (h *BillHandler) ExportXLSX(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	data := h.assembleBill(c, req)
	if errs := bill.Validate(data); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	output, err := h.excelWriter.Write(data)
	if err != nil {
		h.logger.Error("Invoice XLSX generation failed",
			zap.String("invoice_number", data.InvoiceNumber),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate invoice"})
		return
	}

	fileName := document.FileName(data, "xlsx")
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", output)
}

// States returns the fixed state enumeration for address entry.
func (h *BillHandler) States(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": models.IndianStates})
}

// assembleBill builds the export snapshot: current business details,
// the posted customer and items, and freshly derived amounts.
func (h *BillHandler) assembleBill(c *gin.Context, req BillRequest) models.BillData {
	date := time.Now()
	if req.Date != "" {
		if parsed, err := time.Parse("2006-01-02", req.Date); err == nil {
			date = parsed
		} else {
			h.logger.Warn("Unparseable bill date, using today", zap.String("date", req.Date))
		}
	}

	calculated, totals := bill.Calculate(req.Items)

	return models.BillData{
		InvoiceNumber:   req.InvoiceNumber,
		Date:            date,
		BusinessDetails: h.businessRepo.Load(c.Request.Context()),
		CustomerDetails: req.CustomerDetails,
		Items:           calculated,
		Totals:          totals,
	}
}
