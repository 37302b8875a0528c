package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/singharoy/gst-invoice/internal/models"
	"github.com/singharoy/gst-invoice/internal/repository"
)

// BusinessHandler serves the persisted business record.
type BusinessHandler struct {
	repo   *repository.BusinessRepository
	logger *zap.Logger
}

// NewBusinessHandler creates a business details handler.
func NewBusinessHandler(repo *repository.BusinessRepository, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{repo: repo, logger: logger}
}

// Get returns the saved business details, or the defaults when nothing
// has been saved.
func (h *BusinessHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.Load(c.Request.Context()))
}

// Save replaces the business record with the posted one.
func (h *BusinessHandler) Save(c *gin.Context) {
	var details models.BusinessDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.repo.Save(c.Request.Context(), details); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save business details"})
		return
	}

	c.JSON(http.StatusOK, details)
}
