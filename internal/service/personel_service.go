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

type CreatePersonelRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Title     string `json:"title"`
	BolumID   string `json:"bolum_id"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type UpdatePersonelRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Title     *string `json:"title"`
	BolumID   *string `json:"bolum_id"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	IsActive  *bool   `json:"is_active"`
}

type PersonelResponse struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	Title     string     `json:"title"`
	BolumID   *uuid.UUID `json:"bolum_id"`
	BolumName string     `json:"bolum_name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PersonelService interface {
	CreatePersonel(ctx context.Context, actor Actor, req CreatePersonelRequest) (*PersonelResponse, error)
	GetPersonel(ctx context.Context, id string) (*PersonelResponse, error)
	ListPersoneller(ctx context.Context, bolumID, search string, page, limit int) ([]PersonelResponse, int64, error)
	UpdatePersonel(ctx context.Context, actor Actor, id string, req UpdatePersonelRequest) (*PersonelResponse, error)
	DeletePersonel(ctx context.Context, actor Actor, id string) error
}

type personelService struct {
	personelRepo repository.PersonelRepository
	bolumRepo    repository.BolumRepository
	logRepo      repository.LogRepository
	txManager    repository.TransactionManager
}

func NewPersonelService(
	personelRepo repository.PersonelRepository,
	bolumRepo repository.BolumRepository,
	logRepo repository.LogRepository,
	txManager repository.TransactionManager,
) PersonelService {
	return &personelService{
		personelRepo: personelRepo,
		bolumRepo:    bolumRepo,
		logRepo:      logRepo,
		txManager:    txManager,
	}
}

func toPersonelResponse(p *model.Personel) *PersonelResponse {
	res := &PersonelResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		Title:     p.Title,
		BolumID:   p.BolumID,
		Phone:     p.Phone,
		Email:     p.Email,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Bolum != nil {
		res.BolumName = p.Bolum.Name
	}
	return res
}

func (s *personelService) resolveBolum(ctx context.Context, id string) (*model.Bolum, error) {
	bolumID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid bolum id")
	}
	bolum, err := s.bolumRepo.GetByID(ctx, bolumID)
	if err != nil {
		return nil, apperror.New("bolum not found")
	}
	return bolum, nil
}

func (s *personelService) CreatePersonel(ctx context.Context, actor Actor, req CreatePersonelRequest) (*PersonelResponse, error) {
	personel := &model.Personel{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Phone:     req.Phone,
		Email:     req.Email,
		IsActive:  true,
	}

	if req.BolumID != "" {
		bolum, err := s.resolveBolum(ctx, req.BolumID)
		if err != nil {
			return nil, err
		}
		personel.BolumID = &bolum.ID
		personel.Bolum = bolum
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.personelRepo.Create(txCtx, personel); err != nil {
			return fmt.Errorf("failed to create personel: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Personel", personel.ID.String(), "name: "+personel.FullName()))
	})
	if err != nil {
		return nil, err
	}

	return toPersonelResponse(personel), nil
}

func (s *personelService) GetPersonel(ctx context.Context, id string) (*PersonelResponse, error) {
	personelID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid personel id")
	}
	personel, err := s.personelRepo.GetByID(ctx, personelID)
	if err != nil {
		return nil, apperror.NotFound("personel not found")
	}
	return toPersonelResponse(personel), nil
}

func (s *personelService) ListPersoneller(ctx context.Context, bolumID, search string, page, limit int) ([]PersonelResponse, int64, error) {
	personeller, total, err := s.personelRepo.List(ctx, bolumID, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]PersonelResponse, 0, len(personeller))
	for i := range personeller {
		res = append(res, *toPersonelResponse(&personeller[i]))
	}
	return res, total, nil
}

func (s *personelService) UpdatePersonel(ctx context.Context, actor Actor, id string, req UpdatePersonelRequest) (*PersonelResponse, error) {
	personelID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid personel id")
	}
	personel, err := s.personelRepo.GetByID(ctx, personelID)
	if err != nil {
		return nil, apperror.NotFound("personel not found")
	}

	if req.FirstName != nil {
		personel.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		personel.LastName = *req.LastName
	}
	if req.Title != nil {
		personel.Title = *req.Title
	}
	if req.BolumID != nil {
		if *req.BolumID == "" {
			personel.BolumID = nil
			personel.Bolum = nil
		} else {
			bolum, resolveErr := s.resolveBolum(ctx, *req.BolumID)
			if resolveErr != nil {
				return nil, resolveErr
			}
			personel.BolumID = &bolum.ID
			personel.Bolum = bolum
		}
	}
	if req.Phone != nil {
		personel.Phone = *req.Phone
	}
	if req.Email != nil {
		personel.Email = *req.Email
	}
	if req.IsActive != nil {
		personel.IsActive = *req.IsActive
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.personelRepo.Update(txCtx, personel); err != nil {
			return fmt.Errorf("failed to update personel: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "Personel", personel.ID.String(), "name: "+personel.FullName()))
	})
	if err != nil {
		return nil, err
	}

	return toPersonelResponse(personel), nil
}

func (s *personelService) DeletePersonel(ctx context.Context, actor Actor, id string) error {
	personelID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid personel id")
	}
	personel, err := s.personelRepo.GetByID(ctx, personelID)
	if err != nil {
		return apperror.NotFound("personel not found")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.personelRepo.Delete(txCtx, personel.ID); err != nil {
			return fmt.Errorf("failed to delete personel: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "Personel", personel.ID.String(), "name: "+personel.FullName()))
	})
}
