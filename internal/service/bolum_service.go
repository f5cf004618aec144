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

type CreateBolumRequest struct {
	Name        string `json:"name" binding:"required"`
	Building    string `json:"building"`
	Floor       string `json:"floor"`
	Description string `json:"description"`
}

type UpdateBolumRequest struct {
	Name        string `json:"name" binding:"required"`
	Building    string `json:"building"`
	Floor       string `json:"floor"`
	Description string `json:"description"`
}

type BolumResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Building    string    `json:"building"`
	Floor       string    `json:"floor"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BolumService interface {
	CreateBolum(ctx context.Context, actor Actor, req CreateBolumRequest) (*BolumResponse, error)
	GetBolum(ctx context.Context, id string) (*BolumResponse, error)
	ListBolumler(ctx context.Context, search string, page, limit int) ([]BolumResponse, int64, error)
	UpdateBolum(ctx context.Context, actor Actor, id string, req UpdateBolumRequest) (*BolumResponse, error)
	DeleteBolum(ctx context.Context, actor Actor, id string) error
}

type bolumService struct {
	bolumRepo repository.BolumRepository
	logRepo   repository.LogRepository
	txManager repository.TransactionManager
}

func NewBolumService(bolumRepo repository.BolumRepository, logRepo repository.LogRepository, txManager repository.TransactionManager) BolumService {
	return &bolumService{bolumRepo: bolumRepo, logRepo: logRepo, txManager: txManager}
}

func toBolumResponse(b *model.Bolum) *BolumResponse {
	return &BolumResponse{
		ID:          b.ID,
		Name:        b.Name,
		Building:    b.Building,
		Floor:       b.Floor,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (s *bolumService) CreateBolum(ctx context.Context, actor Actor, req CreateBolumRequest) (*BolumResponse, error) {
	bolum := &model.Bolum{
		Name:        req.Name,
		Building:    req.Building,
		Floor:       req.Floor,
		Description: req.Description,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.bolumRepo.Create(txCtx, bolum); err != nil {
			return fmt.Errorf("failed to create bolum: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Bolum", bolum.ID.String(), "name: "+bolum.Name))
	})
	if err != nil {
		return nil, err
	}

	return toBolumResponse(bolum), nil
}

func (s *bolumService) GetBolum(ctx context.Context, id string) (*BolumResponse, error) {
	bolumID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid bolum id")
	}
	bolum, err := s.bolumRepo.GetByID(ctx, bolumID)
	if err != nil {
		return nil, apperror.NotFound("bolum not found")
	}
	return toBolumResponse(bolum), nil
}

func (s *bolumService) ListBolumler(ctx context.Context, search string, page, limit int) ([]BolumResponse, int64, error) {
	bolumler, total, err := s.bolumRepo.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]BolumResponse, 0, len(bolumler))
	for i := range bolumler {
		res = append(res, *toBolumResponse(&bolumler[i]))
	}
	return res, total, nil
}

func (s *bolumService) UpdateBolum(ctx context.Context, actor Actor, id string, req UpdateBolumRequest) (*BolumResponse, error) {
	bolumID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid bolum id")
	}
	bolum, err := s.bolumRepo.GetByID(ctx, bolumID)
	if err != nil {
		return nil, apperror.NotFound("bolum not found")
	}

	bolum.Name = req.Name
	bolum.Building = req.Building
	bolum.Floor = req.Floor
	bolum.Description = req.Description

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.bolumRepo.Update(txCtx, bolum); err != nil {
			return fmt.Errorf("failed to update bolum: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "Bolum", bolum.ID.String(), "name: "+bolum.Name))
	})
	if err != nil {
		return nil, err
	}

	return toBolumResponse(bolum), nil
}

func (s *bolumService) DeleteBolum(ctx context.Context, actor Actor, id string) error {
	bolumID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid bolum id")
	}
	bolum, err := s.bolumRepo.GetByID(ctx, bolumID)
	if err != nil {
		return apperror.NotFound("bolum not found")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.bolumRepo.Delete(txCtx, bolum.ID); err != nil {
			return fmt.Errorf("failed to delete bolum: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "Bolum", bolum.ID.String(), "name: "+bolum.Name))
	})
}
