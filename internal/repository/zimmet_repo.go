package repository

import (
	"context"

	"depo-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ZimmetRepository interface {
	Create(ctx context.Context, zimmet *model.Zimmet) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Zimmet, error)
	List(ctx context.Context, status, personelID, bolumID string, page, limit int) ([]model.Zimmet, int64, error)
	Update(ctx context.Context, zimmet *model.Zimmet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type zimmetRepository struct {
	db *gorm.DB
}

func NewZimmetRepository(db *gorm.DB) ZimmetRepository {
	return &zimmetRepository{db: db}
}

func (r *zimmetRepository) Create(ctx context.Context, zimmet *model.Zimmet) error {
	return GetDB(ctx, r.db).Create(zimmet).Error
}

func (r *zimmetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Zimmet, error) {
	var zimmet model.Zimmet
	if err := GetDB(ctx, r.db).
		Preload("Malzeme").
		Preload("Personel").
		Preload("Bolum").
		First(&zimmet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &zimmet, nil
}

func (r *zimmetRepository) List(ctx context.Context, status, personelID, bolumID string, page, limit int) ([]model.Zimmet, int64, error) {
	var zimmetler []model.Zimmet
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Zimmet{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if personelID != "" {
		query = query.Where("personel_id = ?", personelID)
	}
	if bolumID != "" {
		query = query.Where("bolum_id = ?", bolumID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Malzeme").
		Preload("Personel").
		Preload("Bolum").
		Order("assigned_at DESC").
		Offset(offset).Limit(limit).
		Find(&zimmetler).Error; err != nil {
		return nil, 0, err
	}

	return zimmetler, total, nil
}

func (r *zimmetRepository) Update(ctx context.Context, zimmet *model.Zimmet) error {
	return GetDB(ctx, r.db).Save(zimmet).Error
}

func (r *zimmetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Zimmet{}).Error
}
