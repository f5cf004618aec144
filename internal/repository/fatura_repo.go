package repository

import (
	"context"

	"depo-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FaturaRepository interface {
	Create(ctx context.Context, fatura *model.Fatura) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Fatura, error)
	List(ctx context.Context, faturaType, cariID string, page, limit int) ([]model.Fatura, int64, error)
	Update(ctx context.Context, fatura *model.Fatura) error
	ReplaceItems(ctx context.Context, faturaID uuid.UUID, items []model.FaturaItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByInvoiceNoPrefix(ctx context.Context, prefix string) (int64, error)
}

type faturaRepository struct {
	db *gorm.DB
}

func NewFaturaRepository(db *gorm.DB) FaturaRepository {
	return &faturaRepository{db: db}
}

func (r *faturaRepository) Create(ctx context.Context, fatura *model.Fatura) error {
	return GetDB(ctx, r.db).Create(fatura).Error
}

func (r *faturaRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Fatura, error) {
	var fatura model.Fatura
	if err := GetDB(ctx, r.db).
		Preload("Cari").
		Preload("Items").
		Preload("Items.Malzeme").
		First(&fatura, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fatura, nil
}

func (r *faturaRepository) List(ctx context.Context, faturaType, cariID string, page, limit int) ([]model.Fatura, int64, error) {
	var faturalar []model.Fatura
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Fatura{})
	if faturaType != "" {
		query = query.Where("type = ?", faturaType)
	}
	if cariID != "" {
		query = query.Where("cari_id = ?", cariID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Cari").Preload("Items").
		Order("date DESC, invoice_no DESC").
		Offset(offset).Limit(limit).
		Find(&faturalar).Error; err != nil {
		return nil, 0, err
	}

	return faturalar, total, nil
}

func (r *faturaRepository) Update(ctx context.Context, fatura *model.Fatura) error {
	return GetDB(ctx, r.db).Omit("Items").Save(fatura).Error
}

// ReplaceItems hard-deletes the existing line items and inserts the new set.
// Callers run this inside a transaction together with the invoice update.
func (r *faturaRepository) ReplaceItems(ctx context.Context, faturaID uuid.UUID, items []model.FaturaItem) error {
	db := GetDB(ctx, r.db)
	if err := db.Unscoped().Where("fatura_id = ?", faturaID).Delete(&model.FaturaItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].FaturaID = faturaID
	}
	return db.Create(&items).Error
}

// Delete soft-deletes the invoice and hard-deletes its line items in one call.
// Callers wrap it in a transaction so both either land or roll back together.
func (r *faturaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Unscoped().Where("fatura_id = ?", id).Delete(&model.FaturaItem{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&model.Fatura{}).Error
}

func (r *faturaRepository) CountByInvoiceNoPrefix(ctx context.Context, prefix string) (int64, error) {
	db := GetDB(ctx, r.db)
	// Advisory lock serializes concurrent number generation for the same day
	db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", prefix)

	var count int64
	err := db.Model(&model.Fatura{}).Unscoped().
		Where("invoice_no LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}
