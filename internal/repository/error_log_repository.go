package repository

import (
	"context"

	"gorm.io/gorm"

	"storeapi/internal/model"
)

// ErrorLogRepository defines error log persistence operations. The log is
// append-only.
type ErrorLogRepository interface {
	Create(ctx context.Context, entry *model.ErrorLog) error
}

type errorLogRepository struct {
	db *gorm.DB
}

// NewErrorLogRepository builds a GORM-backed repository.
func NewErrorLogRepository(db *gorm.DB) ErrorLogRepository {
	return &errorLogRepository{db: db}
}

func (r *errorLogRepository) Create(ctx context.Context, entry *model.ErrorLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
