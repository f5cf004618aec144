package repository

import (
	"context"

	"depo-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BolumRepository interface {
	Create(ctx context.Context, bolum *model.Bolum) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Bolum, error)
	List(ctx context.Context, search string, page, limit int) ([]model.Bolum, int64, error)
	Update(ctx context.Context, bolum *model.Bolum) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bolumRepository struct {
	db *gorm.DB
}

func NewBolumRepository(db *gorm.DB) BolumRepository {
	return &bolumRepository{db: db}
}

func (r *bolumRepository) Create(ctx context.Context, bolum *model.Bolum) error {
	return GetDB(ctx, r.db).Create(bolum).Error
}

func (r *bolumRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Bolum, error) {
	var bolum model.Bolum
	if err := GetDB(ctx, r.db).First(&bolum, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bolum, nil
}

func (r *bolumRepository) List(ctx context.Context, search string, page, limit int) ([]model.Bolum, int64, error) {
	var bolumler []model.Bolum
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Bolum{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR building ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&bolumler).Error; err != nil {
		return nil, 0, err
	}

	return bolumler, total, nil
}

func (r *bolumRepository) Update(ctx context.Context, bolum *model.Bolum) error {
	return GetDB(ctx, r.db).Save(bolum).Error
}

func (r *bolumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Bolum{}).Error
}
