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

type CreateZimmetRequest struct {
	MalzemeID  string `json:"malzeme_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	PersonelID string `json:"personel_id"`
	BolumID    string `json:"bolum_id"`
	Note       string `json:"note"`
}

type UpdateZimmetRequest struct {
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	PersonelID string `json:"personel_id"`
	BolumID    string `json:"bolum_id"`
	Note       string `json:"note"`
}

type ZimmetResponse struct {
	ID           uuid.UUID  `json:"id"`
	MalzemeID    uuid.UUID  `json:"malzeme_id"`
	MalzemeName  string     `json:"malzeme_name"`
	Quantity     int        `json:"quantity"`
	PersonelID   *uuid.UUID `json:"personel_id,omitempty"`
	PersonelName string     `json:"personel_name,omitempty"`
	BolumID      *uuid.UUID `json:"bolum_id,omitempty"`
	BolumName    string     `json:"bolum_name,omitempty"`
	Status       string     `json:"status"`
	Note         string     `json:"note"`
	AssignedAt   time.Time  `json:"assigned_at"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
}

// --- Interface ---

type ZimmetService interface {
	CreateZimmet(ctx context.Context, actor Actor, req CreateZimmetRequest) (*ZimmetResponse, error)
	GetZimmet(ctx context.Context, id string) (*ZimmetResponse, error)
	ListZimmetler(ctx context.Context, status, personelID, bolumID string, page, limit int) ([]ZimmetResponse, int64, error)
	UpdateZimmet(ctx context.Context, actor Actor, id string, req UpdateZimmetRequest) (*ZimmetResponse, error)
	ReturnZimmet(ctx context.Context, actor Actor, id string) (*ZimmetResponse, error)
	DeleteZimmet(ctx context.Context, actor Actor, id string) error
}

type zimmetService struct {
	zimmetRepo   repository.ZimmetRepository
	malzemeRepo  repository.MalzemeRepository
	personelRepo repository.PersonelRepository
	bolumRepo    repository.BolumRepository
	logRepo      repository.LogRepository
	txManager    repository.TransactionManager
}

func NewZimmetService(
	zimmetRepo repository.ZimmetRepository,
	malzemeRepo repository.MalzemeRepository,
	personelRepo repository.PersonelRepository,
	bolumRepo repository.BolumRepository,
	logRepo repository.LogRepository,
	txManager repository.TransactionManager,
) ZimmetService {
	return &zimmetService{
		zimmetRepo:   zimmetRepo,
		malzemeRepo:  malzemeRepo,
		personelRepo: personelRepo,
		bolumRepo:    bolumRepo,
		logRepo:      logRepo,
		txManager:    txManager,
	}
}

func toZimmetResponse(z *model.Zimmet) *ZimmetResponse {
	res := &ZimmetResponse{
		ID:         z.ID,
		MalzemeID:  z.MalzemeID,
		Quantity:   z.Quantity,
		PersonelID: z.PersonelID,
		BolumID:    z.BolumID,
		Status:     z.Status,
		Note:       z.Note,
		AssignedAt: z.AssignedAt,
		ReturnedAt: z.ReturnedAt,
	}
	if z.Malzeme != nil {
		res.MalzemeName = z.Malzeme.Name
	}
	if z.Personel != nil {
		res.PersonelName = z.Personel.FullName()
	}
	if z.Bolum != nil {
		res.BolumName = z.Bolum.Name
	}
	return res
}

func (s *zimmetService) CreateZimmet(ctx context.Context, actor Actor, req CreateZimmetRequest) (*ZimmetResponse, error) {
	if req.PersonelID == "" && req.BolumID == "" {
		return nil, apperror.New("zimmet must be assigned to a personel or a bolum")
	}

	malzemeID, err := uuid.Parse(req.MalzemeID)
	if err != nil {
		return nil, apperror.New("invalid malzeme id")
	}
	malzeme, err := s.malzemeRepo.GetByID(ctx, malzemeID)
	if err != nil {
		return nil, apperror.New("malzeme not found")
	}

	zimmet := &model.Zimmet{
		MalzemeID:  malzeme.ID,
		Quantity:   req.Quantity,
		Status:     model.ZimmetActive,
		Note:       req.Note,
		AssignedAt: time.Now(),
	}

	if req.PersonelID != "" {
		personelID, err := uuid.Parse(req.PersonelID)
		if err != nil {
			return nil, apperror.New("invalid personel id")
		}
		if _, err := s.personelRepo.GetByID(ctx, personelID); err != nil {
			return nil, apperror.New("personel not found")
		}
		zimmet.PersonelID = &personelID
	}
	if req.BolumID != "" {
		bolumID, err := uuid.Parse(req.BolumID)
		if err != nil {
			return nil, apperror.New("invalid bolum id")
		}
		if _, err := s.bolumRepo.GetByID(ctx, bolumID); err != nil {
			return nil, apperror.New("bolum not found")
		}
		zimmet.BolumID = &bolumID
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.zimmetRepo.Create(txCtx, zimmet); err != nil {
			return fmt.Errorf("failed to create zimmet: %w", err)
		}
		details := fmt.Sprintf("malzeme: %s, quantity: %d", malzeme.Name, zimmet.Quantity)
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Zimmet", zimmet.ID.String(), details))
	})
	if err != nil {
		return nil, err
	}

	return s.GetZimmet(ctx, zimmet.ID.String())
}

func (s *zimmetService) GetZimmet(ctx context.Context, id string) (*ZimmetResponse, error) {
	zimmetID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid zimmet id")
	}
	zimmet, err := s.zimmetRepo.GetByID(ctx, zimmetID)
	if err != nil {
		return nil, apperror.NotFound("zimmet not found")
	}
	return toZimmetResponse(zimmet), nil
}

func (s *zimmetService) ListZimmetler(ctx context.Context, status, personelID, bolumID string, page, limit int) ([]ZimmetResponse, int64, error) {
	if status != "" && status != model.ZimmetActive && status != model.ZimmetReturned {
		return nil, 0, apperror.New("status must be one of: ACTIVE, RETURNED")
	}

	zimmetler, total, err := s.zimmetRepo.List(ctx, status, personelID, bolumID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]ZimmetResponse, 0, len(zimmetler))
	for i := range zimmetler {
		res = append(res, *toZimmetResponse(&zimmetler[i]))
	}
	return res, total, nil
}

func (s *zimmetService) UpdateZimmet(ctx context.Context, actor Actor, id string, req UpdateZimmetRequest) (*ZimmetResponse, error) {
	if req.PersonelID == "" && req.BolumID == "" {
		return nil, apperror.New("zimmet must be assigned to a personel or a bolum")
	}

	zimmetID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid zimmet id")
	}
	zimmet, err := s.zimmetRepo.GetByID(ctx, zimmetID)
	if err != nil {
		return nil, apperror.NotFound("zimmet not found")
	}
	if zimmet.Status == model.ZimmetReturned {
		return nil, apperror.New("returned zimmet cannot be edited")
	}

	zimmet.Quantity = req.Quantity
	zimmet.Note = req.Note
	zimmet.PersonelID = nil
	zimmet.BolumID = nil

	if req.PersonelID != "" {
		personelID, err := uuid.Parse(req.PersonelID)
		if err != nil {
			return nil, apperror.New("invalid personel id")
		}
		if _, err := s.personelRepo.GetByID(ctx, personelID); err != nil {
			return nil, apperror.New("personel not found")
		}
		zimmet.PersonelID = &personelID
	}
	if req.BolumID != "" {
		bolumID, err := uuid.Parse(req.BolumID)
		if err != nil {
			return nil, apperror.New("invalid bolum id")
		}
		if _, err := s.bolumRepo.GetByID(ctx, bolumID); err != nil {
			return nil, apperror.New("bolum not found")
		}
		zimmet.BolumID = &bolumID
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.zimmetRepo.Update(txCtx, zimmet); err != nil {
			return fmt.Errorf("failed to update zimmet: %w", err)
		}
		details := fmt.Sprintf("quantity: %d", zimmet.Quantity)
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "Zimmet", zimmet.ID.String(), details))
	})
	if err != nil {
		return nil, err
	}

	return s.GetZimmet(ctx, zimmet.ID.String())
}

func (s *zimmetService) ReturnZimmet(ctx context.Context, actor Actor, id string) (*ZimmetResponse, error) {
	zimmetID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid zimmet id")
	}
	zimmet, err := s.zimmetRepo.GetByID(ctx, zimmetID)
	if err != nil {
		return nil, apperror.NotFound("zimmet not found")
	}
	if zimmet.Status == model.ZimmetReturned {
		return nil, apperror.New("zimmet has already been returned")
	}

	now := time.Now()
	zimmet.Status = model.ZimmetReturned
	zimmet.ReturnedAt = &now

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.zimmetRepo.Update(txCtx, zimmet); err != nil {
			return fmt.Errorf("failed to return zimmet: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionReturn, "Zimmet", zimmet.ID.String(), ""))
	})
	if err != nil {
		return nil, err
	}

	return toZimmetResponse(zimmet), nil
}

func (s *zimmetService) DeleteZimmet(ctx context.Context, actor Actor, id string) error {
	zimmetID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid zimmet id")
	}
	zimmet, err := s.zimmetRepo.GetByID(ctx, zimmetID)
	if err != nil {
		return apperror.NotFound("zimmet not found")
	}
	if zimmet.Status == model.ZimmetActive {
		return apperror.New("active zimmet cannot be deleted, return it first")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.zimmetRepo.Delete(txCtx, zimmet.ID); err != nil {
			return fmt.Errorf("failed to delete zimmet: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "Zimmet", zimmet.ID.String(), ""))
	})
}
