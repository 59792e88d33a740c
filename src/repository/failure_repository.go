package repository

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"webscaffold/src/database"
	"webscaffold/src/model"
)

const defaultLatestLimit = 50

// FailureRepository handles persistence of failure records.
type FailureRepository struct {
	db *gorm.DB
}

// NewFailureRepository creates a repository bound to the main database.
func NewFailureRepository() *FailureRepository {
	return &FailureRepository{db: database.MainDB}
}

// WithDB overrides the connection. Test use.
func (r *FailureRepository) WithDB(db *gorm.DB) *FailureRepository {
	r.db = db
	return r
}

// Create persists a new failure record.
func (r *FailureRepository) Create(ctx context.Context, rec *model.FailureRecord) error {
	logger.WithFields(map[string]interface{}{
		"method":      rec.Method,
		"url":         rec.URL,
		"status_code": rec.StatusCode,
		"request_id":  rec.RequestID,
	}).Debug("Persisting failure record")

	return r.db.WithContext(ctx).Create(rec).Error
}

// FindLatest returns the most recent records, newest first. A non-positive
// limit falls back to the default.
func (r *FailureRepository) FindLatest(ctx context.Context, limit int) ([]model.FailureRecord, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}

	var records []model.FailureRecord
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
