package repository

import (
	"context"

	"depo-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KategoriRepository interface {
	Create(ctx context.Context, kategori *model.Kategori) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Kategori, error)
	GetByName(ctx context.Context, name string) (*model.Kategori, error)
	List(ctx context.Context, search string, page, limit int) ([]model.Kategori, int64, error)
	Update(ctx context.Context, kategori *model.Kategori) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountMalzemeler(ctx context.Context, kategoriID uuid.UUID) (int64, error)
}

type kategoriRepository struct {
	db *gorm.DB
}

func NewKategoriRepository(db *gorm.DB) KategoriRepository {
	return &kategoriRepository{db: db}
}

func (r *kategoriRepository) Create(ctx context.Context, kategori *model.Kategori) error {
	return GetDB(ctx, r.db).Create(kategori).Error
}

func (r *kategoriRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Kategori, error) {
	var kategori model.Kategori
	if err := GetDB(ctx, r.db).First(&kategori, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &kategori, nil
}

func (r *kategoriRepository) GetByName(ctx context.Context, name string) (*model.Kategori, error) {
	var kategori model.Kategori
	if err := GetDB(ctx, r.db).First(&kategori, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &kategori, nil
}

func (r *kategoriRepository) List(ctx context.Context, search string, page, limit int) ([]model.Kategori, int64, error) {
	var kategoriler []model.Kategori
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Kategori{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&kategoriler).Error; err != nil {
		return nil, 0, err
	}

	return kategoriler, total, nil
}

func (r *kategoriRepository) Update(ctx context.Context, kategori *model.Kategori) error {
	return GetDB(ctx, r.db).Save(kategori).Error
}

func (r *kategoriRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Kategori{}).Error
}

func (r *kategoriRepository) CountMalzemeler(ctx context.Context, kategoriID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Malzeme{}).Where("kategori_id = ?", kategoriID).Count(&count).Error
	return count, err
}
