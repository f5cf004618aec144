package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"depo-backend/internal/model"
	"depo-backend/internal/repository"
	"depo-backend/internal/websocket"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateTalepRequest struct {
	RequestType string `json:"request_type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Details     string `json:"details" binding:"required"`
	RequestData string `json:"request_data"`
}

type RejectTalepRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type TalepResponse struct {
	ID              uuid.UUID  `json:"id"`
	RequestType     string     `json:"request_type"`
	Title           string     `json:"title"`
	Details         string     `json:"details"`
	RequestData     string     `json:"request_data"`
	Status          string     `json:"status"`
	RequestedBy     uuid.UUID  `json:"requested_by"`
	RequesterName   string     `json:"requester_name,omitempty"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewerName    string     `json:"reviewer_name,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// --- Interface ---

type TalepService interface {
	CreateTalep(ctx context.Context, actor Actor, req CreateTalepRequest) (*TalepResponse, error)
	GetTalep(ctx context.Context, id string) (*TalepResponse, error)
	ListTalepler(ctx context.Context, status string, page, limit int) ([]TalepResponse, int64, error)
	ListTaleplerByUser(ctx context.Context, userID string, page, limit int) ([]TalepResponse, int64, error)
	ApproveTalep(ctx context.Context, actor Actor, id string) (*TalepResponse, error)
	RejectTalep(ctx context.Context, actor Actor, id string, req RejectTalepRequest) (*TalepResponse, error)
	PendingCount(ctx context.Context) (int64, error)
}

type talepService struct {
	talepRepo repository.TalepRepository
	logRepo   repository.LogRepository
	txManager repository.TransactionManager
	hub       *websocket.Hub
}

func NewTalepService(
	talepRepo repository.TalepRepository,
	logRepo repository.LogRepository,
	txManager repository.TransactionManager,
	hub *websocket.Hub,
) TalepService {
	return &talepService{
		talepRepo: talepRepo,
		logRepo:   logRepo,
		txManager: txManager,
		hub:       hub,
	}
}

func toTalepResponse(t *model.Talep) *TalepResponse {
	res := &TalepResponse{
		ID:              t.ID,
		RequestType:     t.RequestType,
		Title:           t.Title,
		Details:         t.Details,
		RequestData:     t.RequestData,
		Status:          t.Status,
		RequestedBy:     t.RequestedBy,
		ReviewedBy:      t.ReviewedBy,
		RejectionReason: t.RejectionReason,
		ReviewedAt:      t.ReviewedAt,
		CreatedAt:       t.CreatedAt,
	}
	if t.Requester != nil {
		res.RequesterName = t.Requester.FullName
	}
	if t.Reviewer != nil {
		res.ReviewerName = t.Reviewer.FullName
	}
	return res
}

// pushPendingCount broadcasts the current pending count to connected admins.
// Failures here never affect the request that triggered it.
func (s *talepService) pushPendingCount(ctx context.Context) {
	if s.hub == nil {
		return
	}
	count, err := s.talepRepo.CountPending(ctx)
	if err != nil {
		return
	}
	s.hub.BroadcastPendingCount(count)
}

func (s *talepService) CreateTalep(ctx context.Context, actor Actor, req CreateTalepRequest) (*TalepResponse, error) {
	if !model.ValidTalepType(req.RequestType) {
		return nil, apperror.New("request_type must be one of: CARI_EKLEME, MALZEME_EKLEME, ZIMMET_EKLEME, DIGER")
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.New("title is required")
	}
	if strings.TrimSpace(req.Details) == "" {
		return nil, apperror.New("details is required")
	}

	requestData := req.RequestData
	if requestData == "" {
		requestData = "{}"
	}
	talep := &model.Talep{
		RequestType: req.RequestType,
		Title:       strings.TrimSpace(req.Title),
		Details:     strings.TrimSpace(req.Details),
		RequestData: requestData,
		Status:      model.TalepPending,
		RequestedBy: actor.ID,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.talepRepo.Create(txCtx, talep); err != nil {
			return fmt.Errorf("failed to create talep: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Talep", talep.ID.String(), "title: "+talep.Title))
	})
	if err != nil {
		return nil, err
	}

	s.pushPendingCount(ctx)
	return toTalepResponse(talep), nil
}

func (s *talepService) GetTalep(ctx context.Context, id string) (*TalepResponse, error) {
	talepID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid talep id")
	}
	talep, err := s.talepRepo.GetByIDWithRelations(ctx, talepID)
	if err != nil {
		return nil, apperror.NotFound("talep not found")
	}
	return toTalepResponse(talep), nil
}

func (s *talepService) ListTalepler(ctx context.Context, status string, page, limit int) ([]TalepResponse, int64, error) {
	if status != "" && status != model.TalepPending && status != model.TalepApproved && status != model.TalepRejected {
		return nil, 0, apperror.New("status must be one of: PENDING, APPROVED, REJECTED")
	}

	talepler, total, err := s.talepRepo.List(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]TalepResponse, 0, len(talepler))
	for i := range talepler {
		res = append(res, *toTalepResponse(&talepler[i]))
	}
	return res, total, nil
}

func (s *talepService) ListTaleplerByUser(ctx context.Context, userID string, page, limit int) ([]TalepResponse, int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, apperror.New("invalid user id")
	}

	talepler, total, err := s.talepRepo.ListByUser(ctx, uid, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]TalepResponse, 0, len(talepler))
	for i := range talepler {
		res = append(res, *toTalepResponse(&talepler[i]))
	}
	return res, total, nil
}

// ApproveTalep marks the request approved. The requested change itself is not
// applied automatically; the reviewer carries it out through the normal endpoints.
func (s *talepService) ApproveTalep(ctx context.Context, actor Actor, id string) (*TalepResponse, error) {
	talepID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid talep id")
	}
	talep, err := s.talepRepo.GetByID(ctx, talepID)
	if err != nil {
		return nil, apperror.NotFound("talep not found")
	}
	if talep.Status != model.TalepPending {
		return nil, apperror.New("only pending talepler can be approved")
	}

	now := time.Now()
	talep.Status = model.TalepApproved
	talep.ReviewedBy = &actor.ID
	talep.ReviewedAt = &now

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.talepRepo.Update(txCtx, talep); err != nil {
			return fmt.Errorf("failed to approve talep: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionApprove, "Talep", talep.ID.String(), "title: "+talep.Title))
	})
	if err != nil {
		return nil, err
	}

	s.pushPendingCount(ctx)
	return s.GetTalep(ctx, id)
}

func (s *talepService) RejectTalep(ctx context.Context, actor Actor, id string, req RejectTalepRequest) (*TalepResponse, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, apperror.New("reject reason is required")
	}

	talepID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid talep id")
	}
	talep, err := s.talepRepo.GetByID(ctx, talepID)
	if err != nil {
		return nil, apperror.NotFound("talep not found")
	}
	if talep.Status != model.TalepPending {
		return nil, apperror.New("only pending talepler can be rejected")
	}

	now := time.Now()
	talep.Status = model.TalepRejected
	talep.ReviewedBy = &actor.ID
	talep.ReviewedAt = &now
	talep.RejectionReason = strings.TrimSpace(req.Reason)

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.talepRepo.Update(txCtx, talep); err != nil {
			return fmt.Errorf("failed to reject talep: %w", err)
		}
		details := fmt.Sprintf("title: %s, reason: %s", talep.Title, talep.RejectionReason)
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionReject, "Talep", talep.ID.String(), details))
	})
	if err != nil {
		return nil, err
	}

	s.pushPendingCount(ctx)
	return s.GetTalep(ctx, id)
}

func (s *talepService) PendingCount(ctx context.Context) (int64, error) {
	return s.talepRepo.CountPending(ctx)
}
