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

type CreateCariRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=SUPPLIER CUSTOMER BOTH"`
	TaxNumber     string `json:"tax_number"`
	TaxOffice     string `json:"tax_office"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
}

type UpdateCariRequest struct {
	Name          *string `json:"name"`
	Type          *string `json:"type" binding:"omitempty,oneof=SUPPLIER CUSTOMER BOTH"`
	TaxNumber     *string `json:"tax_number"`
	TaxOffice     *string `json:"tax_office"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Address       *string `json:"address"`
	IsActive      *bool   `json:"is_active"`
}

type CariResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	TaxNumber     string    `json:"tax_number"`
	TaxOffice     string    `json:"tax_office"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// --- Interface ---

type CariService interface {
	CreateCari(ctx context.Context, actor Actor, req CreateCariRequest) (*CariResponse, error)
	GetCari(ctx context.Context, id string) (*CariResponse, error)
	ListCariler(ctx context.Context, cariType, search string, page, limit int) ([]CariResponse, int64, error)
	UpdateCari(ctx context.Context, actor Actor, id string, req UpdateCariRequest) (*CariResponse, error)
	DeleteCari(ctx context.Context, actor Actor, id string) error
}

type cariService struct {
	cariRepo  repository.CariRepository
	logRepo   repository.LogRepository
	txManager repository.TransactionManager
}

func NewCariService(cariRepo repository.CariRepository, logRepo repository.LogRepository, txManager repository.TransactionManager) CariService {
	return &cariService{cariRepo: cariRepo, logRepo: logRepo, txManager: txManager}
}

// --- Implementation ---

func toCariResponse(c *model.Cari) *CariResponse {
	return &CariResponse{
		ID:            c.ID,
		Name:          c.Name,
		Type:          c.Type,
		TaxNumber:     c.TaxNumber,
		TaxOffice:     c.TaxOffice,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (s *cariService) CreateCari(ctx context.Context, actor Actor, req CreateCariRequest) (*CariResponse, error) {
	cari := &model.Cari{
		Name:          req.Name,
		Type:          req.Type,
		TaxNumber:     req.TaxNumber,
		TaxOffice:     req.TaxOffice,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		IsActive:      true,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cariRepo.Create(txCtx, cari); err != nil {
			return fmt.Errorf("failed to create cari: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Cari", cari.ID.String(), "name: "+cari.Name))
	})
	if err != nil {
		return nil, err
	}

	return toCariResponse(cari), nil
}

func (s *cariService) GetCari(ctx context.Context, id string) (*CariResponse, error) {
	cariID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid cari id")
	}
	cari, err := s.cariRepo.GetByID(ctx, cariID)
	if err != nil {
		return nil, apperror.NotFound("cari not found")
	}
	return toCariResponse(cari), nil
}

func (s *cariService) ListCariler(ctx context.Context, cariType, search string, page, limit int) ([]CariResponse, int64, error) {
	if cariType != "" && cariType != model.CariTypeSupplier && cariType != model.CariTypeCustomer && cariType != model.CariTypeBoth {
		return nil, 0, apperror.New("type must be one of: SUPPLIER, CUSTOMER, BOTH")
	}

	cariler, total, err := s.cariRepo.List(ctx, cariType, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]CariResponse, 0, len(cariler))
	for i := range cariler {
		res = append(res, *toCariResponse(&cariler[i]))
	}
	return res, total, nil
}

func (s *cariService) UpdateCari(ctx context.Context, actor Actor, id string, req UpdateCariRequest) (*CariResponse, error) {
	cariID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid cari id")
	}
	cari, err := s.cariRepo.GetByID(ctx, cariID)
	if err != nil {
		return nil, apperror.NotFound("cari not found")
	}

	if req.Name != nil {
		cari.Name = *req.Name
	}
	if req.Type != nil {
		cari.Type = *req.Type
	}
	if req.TaxNumber != nil {
		cari.TaxNumber = *req.TaxNumber
	}
	if req.TaxOffice != nil {
		cari.TaxOffice = *req.TaxOffice
	}
	if req.ContactPerson != nil {
		cari.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		cari.Phone = *req.Phone
	}
	if req.Email != nil {
		cari.Email = *req.Email
	}
	if req.Address != nil {
		cari.Address = *req.Address
	}
	if req.IsActive != nil {
		cari.IsActive = *req.IsActive
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cariRepo.Update(txCtx, cari); err != nil {
			return fmt.Errorf("failed to update cari: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "Cari", cari.ID.String(), "name: "+cari.Name))
	})
	if err != nil {
		return nil, err
	}

	return toCariResponse(cari), nil
}

func (s *cariService) DeleteCari(ctx context.Context, actor Actor, id string) error {
	cariID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid cari id")
	}
	cari, err := s.cariRepo.GetByID(ctx, cariID)
	if err != nil {
		return apperror.NotFound("cari not found")
	}

	faturaCount, err := s.cariRepo.CountFaturalar(ctx, cari.ID)
	if err != nil {
		return fmt.Errorf("failed to count invoices: %w", err)
	}
	if faturaCount > 0 {
		return apperror.New("cannot delete cari '%s': %d invoice(s) reference it", cari.Name, faturaCount)
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cariRepo.Delete(txCtx, cari.ID); err != nil {
			return fmt.Errorf("failed to delete cari: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "Cari", cari.ID.String(), "name: "+cari.Name))
	})
}
