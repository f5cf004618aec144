package repository

import (
	"context"

	"depo-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CariRepository interface {
	Create(ctx context.Context, cari *model.Cari) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Cari, error)
	List(ctx context.Context, cariType, search string, page, limit int) ([]model.Cari, int64, error)
	Update(ctx context.Context, cari *model.Cari) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountFaturalar(ctx context.Context, cariID uuid.UUID) (int64, error)
}

type cariRepository struct {
	db *gorm.DB
}

func NewCariRepository(db *gorm.DB) CariRepository {
	return &cariRepository{db: db}
}

func (r *cariRepository) Create(ctx context.Context, cari *model.Cari) error {
	return GetDB(ctx, r.db).Create(cari).Error
}

func (r *cariRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Cari, error) {
	var cari model.Cari
	if err := GetDB(ctx, r.db).First(&cari, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cari, nil
}

func (r *cariRepository) List(ctx context.Context, cariType, search string, page, limit int) ([]model.Cari, int64, error) {
	var cariler []model.Cari
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Cari{})
	if cariType != "" {
		query = query.Where("type = ?", cariType)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR tax_number ILIKE ? OR contact_person ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&cariler).Error; err != nil {
		return nil, 0, err
	}

	return cariler, total, nil
}

func (r *cariRepository) Update(ctx context.Context, cari *model.Cari) error {
	return GetDB(ctx, r.db).Save(cari).Error
}

func (r *cariRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Cari{}).Error
}

func (r *cariRepository) CountFaturalar(ctx context.Context, cariID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Fatura{}).Where("cari_id = ?", cariID).Count(&count).Error
	return count, err
}
