// Package repository persists the single business-details record.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/singharoy/gst-invoice/internal/models"
)

// The table holds at most one row.
const businessRecordID = 1

// BusinessRepository stores the business details that survive across
// sessions. Loading never fails visibly: a missing or corrupt record
// degrades to the hard-coded default.
type BusinessRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewBusinessRepository creates a business details repository.
func NewBusinessRepository(db *sql.DB, logger *zap.Logger) *BusinessRepository {
	return &BusinessRepository{db: db, logger: logger}
}

// Load returns the persisted business details, or the default record
// when nothing has been saved or the stored payload cannot be decoded.
// The default is never written back.
func (r *BusinessRepository) Load(ctx context.Context) models.BusinessDetails {
	var payload string
	err := r.db.QueryRowContext(ctx,
		"SELECT payload FROM business_details WHERE id = ?", businessRecordID,
	).Scan(&payload)
	if err != nil {
		if err != sql.ErrNoRows {
			r.logger.Warn("Failed to read business details, using defaults", zap.Error(err))
		}
		return models.DefaultBusinessDetails()
	}

	var details models.BusinessDetails
	if err := json.Unmarshal([]byte(payload), &details); err != nil {
		r.logger.Warn("Corrupt business details payload, using defaults", zap.Error(err))
		return models.DefaultBusinessDetails()
	}
	return details
}

// Save replaces the stored record. Saving a record equal to the default
// deletes the row instead, so future changes to the code-level default
// reach users who never customized it.
func (r *BusinessRepository) Save(ctx context.Context, details models.BusinessDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode business details: %w", err)
	}

	defaultPayload, err := json.Marshal(models.DefaultBusinessDetails())
	if err != nil {
		return fmt.Errorf("failed to encode default business details: %w", err)
	}

	if string(payload) == string(defaultPayload) {
		if _, err := r.db.ExecContext(ctx,
			"DELETE FROM business_details WHERE id = ?", businessRecordID,
		); err != nil {
			return fmt.Errorf("failed to reset business details: %w", err)
		}
		r.logger.Info("Business details reset to defaults")
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO business_details (id, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
	`, businessRecordID, string(payload)); err != nil {
		r.logger.Error("Failed to save business details", zap.Error(err))
		return fmt.Errorf("failed to save business details: %w", err)
	}

	r.logger.Info("Business details saved", zap.String("name", details.Name))
	return nil
}
