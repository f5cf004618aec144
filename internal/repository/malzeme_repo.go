package repository

import (
	"context"

	"depo-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MalzemeRepository interface {
	Create(ctx context.Context, malzeme *model.Malzeme) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Malzeme, error)
	GetByCode(ctx context.Context, code string) (*model.Malzeme, error)
	List(ctx context.Context, kategoriID, search string, page, limit int) ([]model.Malzeme, int64, error)
	Update(ctx context.Context, malzeme *model.Malzeme) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActiveZimmetler(ctx context.Context, malzemeID uuid.UUID) (int64, error)
}

type malzemeRepository struct {
	db *gorm.DB
}

func NewMalzemeRepository(db *gorm.DB) MalzemeRepository {
	return &malzemeRepository{db: db}
}

func (r *malzemeRepository) Create(ctx context.Context, malzeme *model.Malzeme) error {
	return GetDB(ctx, r.db).Create(malzeme).Error
}

func (r *malzemeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Malzeme, error) {
	var malzeme model.Malzeme
	if err := GetDB(ctx, r.db).Preload("Kategori").First(&malzeme, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &malzeme, nil
}

func (r *malzemeRepository) GetByCode(ctx context.Context, code string) (*model.Malzeme, error) {
	var malzeme model.Malzeme
	if err := GetDB(ctx, r.db).First(&malzeme, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &malzeme, nil
}

func (r *malzemeRepository) List(ctx context.Context, kategoriID, search string, page, limit int) ([]model.Malzeme, int64, error) {
	var malzemeler []model.Malzeme
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Malzeme{})
	if kategoriID != "" {
		query = query.Where("kategori_id = ?", kategoriID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Kategori").Order("name ASC").Offset(offset).Limit(limit).Find(&malzemeler).Error; err != nil {
		return nil, 0, err
	}

	return malzemeler, total, nil
}

func (r *malzemeRepository) Update(ctx context.Context, malzeme *model.Malzeme) error {
	return GetDB(ctx, r.db).Save(malzeme).Error
}

func (r *malzemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Malzeme{}).Error
}

func (r *malzemeRepository) CountActiveZimmetler(ctx context.Context, malzemeID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Zimmet{}).
		Where("malzeme_id = ? AND status = ?", malzemeID, model.ZimmetActive).
		Count(&count).Error
	return count, err
}
