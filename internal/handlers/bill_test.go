package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/singharoy/gst-invoice/internal/export"
	"github.com/singharoy/gst-invoice/internal/models"
	"github.com/singharoy/gst-invoice/internal/pdf"
	"github.com/singharoy/gst-invoice/internal/repository"
)

func ptr(v float64) *float64 { return &v }

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE business_details (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			payload TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	require.NoError(t, err)

	logger := zap.NewNop()
	businessRepo := repository.NewBusinessRepository(db, logger)
	billHandler := NewBillHandler(businessRepo, pdf.NewRenderer(logger), export.NewExcelWriter(logger), logger)
	businessHandler := NewBusinessHandler(businessRepo, logger)

	router := gin.New()
	router.GET("/api/v1/business", businessHandler.Get)
	router.PUT("/api/v1/business", businessHandler.Save)
	router.GET("/api/v1/states", billHandler.States)
	router.POST("/api/v1/bill/items/normalize", billHandler.NormalizeItems)
	router.POST("/api/v1/bill/calculate", billHandler.Calculate)
	router.POST("/api/v1/bill/validate", billHandler.Validate)
	router.POST("/api/v1/bill/export/pdf", billHandler.ExportPDF)
	router.POST("/api/v1/bill/export/xlsx", billHandler.ExportXLSX)
	router.POST("/api/v1/gst/reverse", billHandler.ReverseGST)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validBillRequest() BillRequest {
	return BillRequest{
		InvoiceNumber: "INV-001",
		Date:          "2025-04-07",
		CustomerDetails: models.CustomerDetails{
			Name: "Acme Traders",
			Address: models.Address{
				Line1: "12 Market Road",
				City:  "Kolkata",
				State: "West Bengal",
			},
		},
		Items: []models.BillItem{
			{ID: "a", Description: "Widget", HSNSAC: "1234", Quantity: ptr(2), Rate: ptr(100), CGSTPercent: ptr(9), SGSTPercent: ptr(9)},
		},
	}
}

// One filled row plus the auto-appended blank row still totals 236.
func TestCalculateEndpoint(t *testing.T) {
	router := testRouter(t)

	normalize := doJSON(t, router, http.MethodPost, "/api/v1/bill/items/normalize", ItemsRequest{
		Items: validBillRequest().Items,
	})
	require.Equal(t, http.StatusOK, normalize.Code)

	var normalized struct {
		Items []models.BillItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(normalize.Body.Bytes(), &normalized))
	require.Len(t, normalized.Items, 2)

	calculate := doJSON(t, router, http.MethodPost, "/api/v1/bill/calculate", ItemsRequest{Items: normalized.Items})
	require.Equal(t, http.StatusOK, calculate.Code)

	var result struct {
		CalculatedItems []models.BillItemCalculated `json:"calculatedItems"`
		Totals          models.BillTotals           `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(calculate.Body.Bytes(), &result))

	require.Len(t, result.CalculatedItems, 2)
	assert.InDelta(t, 200, result.CalculatedItems[0].TaxableValue, 1e-9)
	assert.InDelta(t, 18, result.CalculatedItems[0].CGSTAmount, 1e-9)
	assert.InDelta(t, 18, result.CalculatedItems[0].SGSTAmount, 1e-9)
	assert.InDelta(t, 236, result.CalculatedItems[0].TotalAmount, 1e-9)
	assert.InDelta(t, 236, result.Totals.GrandTotal, 1e-9)
}

func TestCalculateEndpointRejectsBadBody(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bill/calculate", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bill/validate", BillRequest{})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Errors map[string]string `json:"errors"`
		Valid  bool              `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "invoiceNumber")
	assert.Contains(t, result.Errors, "customerName")
	assert.Contains(t, result.Errors, "billItems")
}

func TestValidateEndpointValidBill(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bill/validate", validBillRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Errors map[string]string `json:"errors"`
		Valid  bool              `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestExportPDFBlockedByValidation(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bill/export/pdf", BillRequest{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invoice number is required")
}

func TestExportPDFStreamsAttachment(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bill/export/pdf", validBillRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Invoice_INV-001.pdf")
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestExportXLSXStreamsAttachment(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bill/export/xlsx", validBillRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Invoice_INV-001.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestReverseGSTEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/gst/reverse", ReverseRequest{
		Total: 11800, CGSTPercent: 9, SGSTPercent: 9,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		TaxableValue float64 `json:"taxableValue"`
		CGSTAmount   float64 `json:"cgstAmount"`
		SGSTAmount   float64 `json:"sgstAmount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.InDelta(t, 10000, result.TaxableValue, 1e-6)
	assert.InDelta(t, 900, result.CGSTAmount, 1e-6)
	assert.InDelta(t, 900, result.SGSTAmount, 1e-6)
}

func TestReverseGSTEndpointRejectsZeroTotal(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/gst/reverse", ReverseRequest{Total: 0})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatesEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/states", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		States []string `json:"states"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.States, 36)
	assert.Contains(t, result.States, "West Bengal")
}

func TestBusinessEndpoints(t *testing.T) {
	router := testRouter(t)

	get := doJSON(t, router, http.MethodGet, "/api/v1/business", nil)
	require.Equal(t, http.StatusOK, get.Code)

	var details models.BusinessDetails
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &details))
	assert.Equal(t, "SINGHA ROY ENTERPRISE", details.Name)

	details.Name = "ROY AND SONS"
	put := doJSON(t, router, http.MethodPut, "/api/v1/business", details)
	require.Equal(t, http.StatusOK, put.Code)

	get = doJSON(t, router, http.MethodGet, "/api/v1/business", nil)
	require.Equal(t, http.StatusOK, get.Code)

	var saved models.BusinessDetails
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &saved))
	assert.Equal(t, "ROY AND SONS", saved.Name)
}
