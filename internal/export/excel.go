// Package export writes the computed bill as a spreadsheet for
// book-keeping alongside the printable PDF.
package export

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/singharoy/gst-invoice/internal/models"
	"github.com/singharoy/gst-invoice/internal/words"
	"github.com/singharoy/gst-invoice/pkg/format"
)

var columnHeaders = []string{
	"S.No", "Description of Goods", "HSN/SAC", "Qty", "Rate",
	"Taxable Value", "CGST", "SGST", "Amount",
}

// ExcelWriter renders bills to XLSX.
type ExcelWriter struct {
	logger *zap.Logger
}

// NewExcelWriter creates an Excel writer.
func NewExcelWriter(logger *zap.Logger) *ExcelWriter {
	return &ExcelWriter{logger: logger}
}

// Write produces the XLSX bytes for a bill. Fully blank rows are
// skipped, matching the printed invoice.
func (w *ExcelWriter) Write(data models.BillData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	w.setCell(f, sheet, "A1", data.BusinessDetails.Name)
	w.setCell(f, sheet, "A2", "GST No: "+data.BusinessDetails.GSTNo)
	w.setCell(f, sheet, "G1", "INVOICE NO: "+data.InvoiceNumber)
	w.setCell(f, sheet, "G2", "Date: "+format.Date(data.Date))
	w.setCell(f, sheet, "A4", "Bill To: "+data.CustomerDetails.Name)

	headerRow := 6
	for i, header := range columnHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		w.setCell(f, sheet, cell, header)
	}

	row := headerRow + 1
	serial := 1
	for _, item := range data.Items {
		if strings.TrimSpace(item.Description) == "" &&
			strings.TrimSpace(item.HSNSAC) == "" &&
			item.TaxableValue <= 0 {
			continue
		}
		values := []interface{}{
			serial,
			item.Description,
			item.HSNSAC,
			pointerOrZero(item.Quantity),
			pointerOrZero(item.Rate),
			item.TaxableValue,
			item.CGSTAmount,
			item.SGSTAmount,
			item.TotalAmount,
		}
		if err := w.setRow(f, sheet, row, values); err != nil {
			return nil, err
		}
		serial++
		row++
	}

	totalsRow := []interface{}{
		"", "", "", "", "Total",
		data.Totals.TotalTaxableValue,
		data.Totals.TotalCGST,
		data.Totals.TotalSGST,
		data.Totals.GrandTotal,
	}
	if err := w.setRow(f, sheet, row, totalsRow); err != nil {
		return nil, err
	}

	wordsCell, err := excelize.CoordinatesToCellName(1, row+2)
	if err != nil {
		return nil, fmt.Errorf("failed to compute words cell: %w", err)
	}
	w.setCell(f, sheet, wordsCell, "Amount Chargeable (in words): "+
		words.AmountInWords(math.Round(data.Totals.GrandTotal)))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		w.logger.Error("Failed to write XLSX", zap.Error(err))
		return nil, fmt.Errorf("failed to write XLSX: %w", err)
	}

	w.logger.Debug("Wrote XLSX export",
		zap.String("invoice_number", data.InvoiceNumber),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func (w *ExcelWriter) setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", row, err)
		}
		w.setCell(f, sheet, cell, value)
	}
	return nil
}

func (w *ExcelWriter) setCell(f *excelize.File, sheet, cell string, value interface{}) {
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		w.logger.Warn("Failed to set cell value",
			zap.String("cell", cell),
			zap.Error(err))
	}
}

func pointerOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
