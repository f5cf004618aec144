package service

import (
	"context"
	"fmt"
	"time"

	"depo-backend/internal/model"
	"depo-backend/internal/repository"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
)

type CreateKategoriRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateKategoriRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type KategoriResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type KategoriService interface {
	CreateKategori(ctx context.Context, actor Actor, req CreateKategoriRequest) (*KategoriResponse, error)
	GetKategori(ctx context.Context, id string) (*KategoriResponse, error)
	ListKategoriler(ctx context.Context, search string, page, limit int) ([]KategoriResponse, int64, error)
	UpdateKategori(ctx context.Context, actor Actor, id string, req UpdateKategoriRequest) (*KategoriResponse, error)
	DeleteKategori(ctx context.Context, actor Actor, id string) error
}

type kategoriService struct {
	kategoriRepo repository.KategoriRepository
	logRepo      repository.LogRepository
	txManager    repository.TransactionManager
}

func NewKategoriService(kategoriRepo repository.KategoriRepository, logRepo repository.LogRepository, txManager repository.TransactionManager) KategoriService {
	return &kategoriService{kategoriRepo: kategoriRepo, logRepo: logRepo, txManager: txManager}
}

func toKategoriResponse(k *model.Kategori) *KategoriResponse {
	return &KategoriResponse{
		ID:          k.ID,
		Name:        k.Name,
		Description: k.Description,
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
}

func (s *kategoriService) CreateKategori(ctx context.Context, actor Actor, req CreateKategoriRequest) (*KategoriResponse, error) {
	if _, err := s.kategoriRepo.GetByName(ctx, req.Name); err == nil {
		return nil, apperror.New("kategori name already exists")
	}

	kategori := &model.Kategori{Name: req.Name, Description: req.Description}
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.kategoriRepo.Create(txCtx, kategori); err != nil {
			return fmt.Errorf("failed to create kategori: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Kategori", kategori.ID.String(), "name: "+kategori.Name))
	})
	if err != nil {
		return nil, err
	}

	return toKategoriResponse(kategori), nil
}

func (s *kategoriService) GetKategori(ctx context.Context, id string) (*KategoriResponse, error) {
	kategoriID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid kategori id")
	}
	kategori, err := s.kategoriRepo.GetByID(ctx, kategoriID)
	if err != nil {
		return nil, apperror.NotFound("kategori not found")
	}
	return toKategoriResponse(kategori), nil
}

func (s *kategoriService) ListKategoriler(ctx context.Context, search string, page, limit int) ([]KategoriResponse, int64, error) {
	kategoriler, total, err := s.kategoriRepo.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]KategoriResponse, 0, len(kategoriler))
	for i := range kategoriler {
		res = append(res, *toKategoriResponse(&kategoriler[i]))
	}
	return res, total, nil
}

func (s *kategoriService) UpdateKategori(ctx context.Context, actor Actor, id string, req UpdateKategoriRequest) (*KategoriResponse, error) {
	kategoriID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid kategori id")
	}
	kategori, err := s.kategoriRepo.GetByID(ctx, kategoriID)
	if err != nil {
		return nil, apperror.NotFound("kategori not found")
	}

	if req.Name != kategori.Name {
		if _, err := s.kategoriRepo.GetByName(ctx, req.Name); err == nil {
			return nil, apperror.New("kategori name already exists")
		}
	}

	kategori.Name = req.Name
	kategori.Description = req.Description

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.kategoriRepo.Update(txCtx, kategori); err != nil {
			return fmt.Errorf("failed to update kategori: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "Kategori", kategori.ID.String(), "name: "+kategori.Name))
	})
	if err != nil {
		return nil, err
	}

	return toKategoriResponse(kategori), nil
}

func (s *kategoriService) DeleteKategori(ctx context.Context, actor Actor, id string) error {
	kategoriID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid kategori id")
	}
	kategori, err := s.kategoriRepo.GetByID(ctx, kategoriID)
	if err != nil {
		return apperror.NotFound("kategori not found")
	}

	malzemeCount, err := s.kategoriRepo.CountMalzemeler(ctx, kategori.ID)
	if err != nil {
		return fmt.Errorf("failed to count materials: %w", err)
	}
	if malzemeCount > 0 {
		return apperror.New("cannot delete kategori '%s': %d material(s) reference it", kategori.Name, malzemeCount)
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.kategoriRepo.Delete(txCtx, kategori.ID); err != nil {
			return fmt.Errorf("failed to delete kategori: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "Kategori", kategori.ID.String(), "name: "+kategori.Name))
	})
}
