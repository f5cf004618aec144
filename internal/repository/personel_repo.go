package repository

import (
	"context"

	"depo-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonelRepository interface {
	Create(ctx context.Context, personel *model.Personel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Personel, error)
	List(ctx context.Context, bolumID, search string, page, limit int) ([]model.Personel, int64, error)
	Update(ctx context.Context, personel *model.Personel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type personelRepository struct {
	db *gorm.DB
}

func NewPersonelRepository(db *gorm.DB) PersonelRepository {
	return &personelRepository{db: db}
}

func (r *personelRepository) Create(ctx context.Context, personel *model.Personel) error {
	return GetDB(ctx, r.db).Create(personel).Error
}

func (r *personelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Personel, error) {
	var personel model.Personel
	if err := GetDB(ctx, r.db).Preload("Bolum").First(&personel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &personel, nil
}

func (r *personelRepository) List(ctx context.Context, bolumID, search string, page, limit int) ([]model.Personel, int64, error) {
	var personeller []model.Personel
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Personel{})
	if bolumID != "" {
		query = query.Where("bolum_id = ?", bolumID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR title ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Bolum").Order("first_name ASC, last_name ASC").Offset(offset).Limit(limit).Find(&personeller).Error; err != nil {
		return nil, 0, err
	}

	return personeller, total, nil
}

func (r *personelRepository) Update(ctx context.Context, personel *model.Personel) error {
	return GetDB(ctx, r.db).Save(personel).Error
}

func (r *personelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Personel{}).Error
}
