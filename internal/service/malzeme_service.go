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

// --- DTOs ---

type CreateMalzemeRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	KategoriID    string `json:"kategori_id"`
	Unit          string `json:"unit" binding:"required"`
	StockQuantity int    `json:"stock_quantity" binding:"omitempty,min=0"`
	MinStockLevel int    `json:"min_stock_level" binding:"omitempty,min=0"`
	Description   string `json:"description"`
}

type UpdateMalzemeRequest struct {
	Code          *string `json:"code"`
	Name          *string `json:"name"`
	KategoriID    *string `json:"kategori_id"`
	Unit          *string `json:"unit"`
	StockQuantity *int    `json:"stock_quantity" binding:"omitempty,min=0"`
	MinStockLevel *int    `json:"min_stock_level" binding:"omitempty,min=0"`
	Description   *string `json:"description"`
}

type MalzemeResponse struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	KategoriID    *uuid.UUID `json:"kategori_id"`
	KategoriName  string     `json:"kategori_name"`
	Unit          string     `json:"unit"`
	StockQuantity int        `json:"stock_quantity"`
	MinStockLevel int        `json:"min_stock_level"`
	Description   string     `json:"description"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// --- Interface ---

type MalzemeService interface {
	CreateMalzeme(ctx context.Context, actor Actor, req CreateMalzemeRequest) (*MalzemeResponse, error)
	GetMalzeme(ctx context.Context, id string) (*MalzemeResponse, error)
	ListMalzemeler(ctx context.Context, kategoriID, search string, page, limit int) ([]MalzemeResponse, int64, error)
	UpdateMalzeme(ctx context.Context, actor Actor, id string, req UpdateMalzemeRequest) (*MalzemeResponse, error)
	DeleteMalzeme(ctx context.Context, actor Actor, id string) error
}

type malzemeService struct {
	malzemeRepo  repository.MalzemeRepository
	kategoriRepo repository.KategoriRepository
	logRepo      repository.LogRepository
	txManager    repository.TransactionManager
}

func NewMalzemeService(
	malzemeRepo repository.MalzemeRepository,
	kategoriRepo repository.KategoriRepository,
	logRepo repository.LogRepository,
	txManager repository.TransactionManager,
) MalzemeService {
	return &malzemeService{
		malzemeRepo:  malzemeRepo,
		kategoriRepo: kategoriRepo,
		logRepo:      logRepo,
		txManager:    txManager,
	}
}

// --- Validation helpers ---

var validUnits = map[string]bool{
	model.UnitAdet:     true,
	model.UnitKutu:     true,
	model.UnitPaket:    true,
	model.UnitLitre:    true,
	model.UnitKilogram: true,
}

// validateUnit rejects unknown unit tags at the boundary with a 400, never a 500
func validateUnit(unit string) error {
	if !validUnits[unit] {
		return apperror.New("unit must be one of: ADET, KUTU, PAKET, LITRE, KILOGRAM")
	}
	return nil
}

func toMalzemeResponse(m *model.Malzeme) *MalzemeResponse {
	res := &MalzemeResponse{
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Name,
		KategoriID:    m.KategoriID,
		Unit:          m.Unit,
		StockQuantity: m.StockQuantity,
		MinStockLevel: m.MinStockLevel,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Kategori != nil {
		res.KategoriName = m.Kategori.Name
	}
	return res
}

func (s *malzemeService) resolveKategori(ctx context.Context, id string) (*model.Kategori, error) {
	kategoriID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid kategori id")
	}
	kategori, err := s.kategoriRepo.GetByID(ctx, kategoriID)
	if err != nil {
		return nil, apperror.New("kategori not found")
	}
	return kategori, nil
}

func (s *malzemeService) CreateMalzeme(ctx context.Context, actor Actor, req CreateMalzemeRequest) (*MalzemeResponse, error) {
	if err := validateUnit(req.Unit); err != nil {
		return nil, err
	}

	if _, err := s.malzemeRepo.GetByCode(ctx, req.Code); err == nil {
		return nil, apperror.New("malzeme code already exists")
	}

	malzeme := &model.Malzeme{
		Code:          req.Code,
		Name:          req.Name,
		Unit:          req.Unit,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		Description:   req.Description,
	}

	if req.KategoriID != "" {
		kategori, err := s.resolveKategori(ctx, req.KategoriID)
		if err != nil {
			return nil, err
		}
		malzeme.KategoriID = &kategori.ID
		malzeme.Kategori = kategori
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.malzemeRepo.Create(txCtx, malzeme); err != nil {
			return fmt.Errorf("failed to create malzeme: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Malzeme", malzeme.ID.String(), "code: "+malzeme.Code))
	})
	if err != nil {
		return nil, err
	}

	return toMalzemeResponse(malzeme), nil
}

func (s *malzemeService) GetMalzeme(ctx context.Context, id string) (*MalzemeResponse, error) {
	malzemeID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid malzeme id")
	}
	malzeme, err := s.malzemeRepo.GetByID(ctx, malzemeID)
	if err != nil {
		return nil, apperror.NotFound("malzeme not found")
	}
	return toMalzemeResponse(malzeme), nil
}

func (s *malzemeService) ListMalzemeler(ctx context.Context, kategoriID, search string, page, limit int) ([]MalzemeResponse, int64, error) {
	malzemeler, total, err := s.malzemeRepo.List(ctx, kategoriID, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]MalzemeResponse, 0, len(malzemeler))
	for i := range malzemeler {
		res = append(res, *toMalzemeResponse(&malzemeler[i]))
	}
	return res, total, nil
}

func (s *malzemeService) UpdateMalzeme(ctx context.Context, actor Actor, id string, req UpdateMalzemeRequest) (*MalzemeResponse, error) {
	malzemeID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid malzeme id")
	}
	malzeme, err := s.malzemeRepo.GetByID(ctx, malzemeID)
	if err != nil {
		return nil, apperror.NotFound("malzeme not found")
	}

	if req.Code != nil && *req.Code != malzeme.Code {
		if _, err := s.malzemeRepo.GetByCode(ctx, *req.Code); err == nil {
			return nil, apperror.New("malzeme code already exists")
		}
		malzeme.Code = *req.Code
	}
	if req.Name != nil {
		malzeme.Name = *req.Name
	}
	if req.Unit != nil {
		if err := validateUnit(*req.Unit); err != nil {
			return nil, err
		}
		malzeme.Unit = *req.Unit
	}
	if req.KategoriID != nil {
		if *req.KategoriID == "" {
			malzeme.KategoriID = nil
			malzeme.Kategori = nil
		} else {
			kategori, resolveErr := s.resolveKategori(ctx, *req.KategoriID)
			if resolveErr != nil {
				return nil, resolveErr
			}
			malzeme.KategoriID = &kategori.ID
			malzeme.Kategori = kategori
		}
	}
	if req.StockQuantity != nil {
		malzeme.StockQuantity = *req.StockQuantity
	}
	if req.MinStockLevel != nil {
		malzeme.MinStockLevel = *req.MinStockLevel
	}
	if req.Description != nil {
		malzeme.Description = *req.Description
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.malzemeRepo.Update(txCtx, malzeme); err != nil {
			return fmt.Errorf("failed to update malzeme: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "Malzeme", malzeme.ID.String(), "code: "+malzeme.Code))
	})
	if err != nil {
		return nil, err
	}

	return toMalzemeResponse(malzeme), nil
}

func (s *malzemeService) DeleteMalzeme(ctx context.Context, actor Actor, id string) error {
	malzemeID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid malzeme id")
	}
	malzeme, err := s.malzemeRepo.GetByID(ctx, malzemeID)
	if err != nil {
		return apperror.NotFound("malzeme not found")
	}

	zimmetCount, err := s.malzemeRepo.CountActiveZimmetler(ctx, malzeme.ID)
	if err != nil {
		return fmt.Errorf("failed to count active assignments: %w", err)
	}
	if zimmetCount > 0 {
		return apperror.New("cannot delete malzeme '%s': %d active assignment(s) reference it", malzeme.Name, zimmetCount)
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.malzemeRepo.Delete(txCtx, malzeme.ID); err != nil {
			return fmt.Errorf("failed to delete malzeme: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "Malzeme", malzeme.ID.String(), "code: "+malzeme.Code))
	})
}
