package repository

import (
	"context"
	"time"

	"depo-backend/internal/model"

	"gorm.io/gorm"
)

// LogFilter is the optional parameter bag for audit queries
type LogFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	UserID     string
	Action     string
	EntityType string
	Page       int
	Limit      int
}

// LogRepository appends and queries the audit trail. The table is append-only;
// no update or delete methods exist on purpose.
type LogRepository interface {
	Create(ctx context.Context, entry *model.SystemLog) error
	List(ctx context.Context, filter LogFilter) ([]model.SystemLog, int64, error)
	Recent(ctx context.Context, limit int) ([]model.SystemLog, error)
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, entry *model.SystemLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *logRepository) List(ctx context.Context, filter LogFilter) ([]model.SystemLog, int64, error) {
	var logs []model.SystemLog
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.SystemLog{})
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *logRepository) Recent(ctx context.Context, limit int) ([]model.SystemLog, error) {
	var logs []model.SystemLog
	if err := GetDB(ctx, r.db).Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
