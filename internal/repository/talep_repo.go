package repository

import (
	"context"

	"depo-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TalepRepository interface {
	Create(ctx context.Context, talep *model.Talep) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Talep, error)
	GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Talep, error)
	List(ctx context.Context, status string, page, limit int) ([]model.Talep, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.Talep, int64, error)
	CountPending(ctx context.Context) (int64, error)
	Update(ctx context.Context, talep *model.Talep) error
}

type talepRepository struct {
	db *gorm.DB
}

func NewTalepRepository(db *gorm.DB) TalepRepository {
	return &talepRepository{db: db}
}

func (r *talepRepository) Create(ctx context.Context, talep *model.Talep) error {
	return GetDB(ctx, r.db).Create(talep).Error
}

func (r *talepRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
	var talep model.Talep
	if err := GetDB(ctx, r.db).First(&talep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &talep, nil
}

func (r *talepRepository) GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
	var talep model.Talep
	if err := GetDB(ctx, r.db).Preload("Requester").Preload("Reviewer").First(&talep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &talep, nil
}

func (r *talepRepository) List(ctx context.Context, status string, page, limit int) ([]model.Talep, int64, error) {
	var talepler []model.Talep
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Talep{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Requester").Preload("Reviewer").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&talepler).Error; err != nil {
		return nil, 0, err
	}

	return talepler, total, nil
}

func (r *talepRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.Talep, int64, error) {
	var talepler []model.Talep
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Talep{}).Where("requested_by = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Reviewer").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&talepler).Error; err != nil {
		return nil, 0, err
	}

	return talepler, total, nil
}

func (r *talepRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Talep{}).Where("status = ?", model.TalepPending).Count(&count).Error
	return count, err
}

func (r *talepRepository) Update(ctx context.Context, talep *model.Talep) error {
	return GetDB(ctx, r.db).Save(talep).Error
}
