package service

import (
	"context"
	"testing"

	"depo-backend/internal/model"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
)

func newTalepServiceForTest(t *testing.T, talepRepo *mockTalepRepository) (TalepService, *mockLogRepository) {
	t.Helper()
	logRepo := &mockLogRepository{}
	return NewTalepService(talepRepo, logRepo, &mockTxManager{}, nil), logRepo
}

func testActor() Actor {
	return Actor{ID: uuid.New(), Username: "testuser", IP: "127.0.0.1"}
}

func TestCreateTalep(t *testing.T) {
	talepRepo := &mockTalepRepository{
		createFunc: func(ctx context.Context, talep *model.Talep) error {
			talep.ID = uuid.New()
			return nil
		},
	}
	svc, logRepo := newTalepServiceForTest(t, talepRepo)
	actor := testActor()

	res, err := svc.CreateTalep(context.Background(), actor, CreateTalepRequest{
		RequestType: model.TalepTypeCariEkleme,
		Title:       "Yeni tedarikci",
		Details:     "ABC Medikal eklensin",
	})
	if err != nil {
		t.Fatalf("CreateTalep failed: %v", err)
	}
	if res.Status != model.TalepPending {
		t.Errorf("new talep status: got %s, want PENDING", res.Status)
	}
	if res.RequestedBy != actor.ID {
		t.Error("requester should be the acting user")
	}
	if res.RequestData != "{}" {
		t.Errorf("empty payload should default to {}, got %s", res.RequestData)
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionCreate {
		t.Error("expected a CREATE audit entry")
	}
}

func TestCreateTalepValidation(t *testing.T) {
	svc, _ := newTalepServiceForTest(t, &mockTalepRepository{})

	_, err := svc.CreateTalep(context.Background(), testActor(), CreateTalepRequest{
		RequestType: "INVALID_TYPE",
		Title:       "x",
	})
	if !apperror.IsBusiness(err) {
		t.Errorf("unknown request type should be a business error, got %v", err)
	}

	_, err = svc.CreateTalep(context.Background(), testActor(), CreateTalepRequest{
		RequestType: model.TalepTypeDiger,
		Title:       "   ",
		Details:     "gerekce",
	})
	if !apperror.IsBusiness(err) {
		t.Errorf("blank title should be a business error, got %v", err)
	}

	_, err = svc.CreateTalep(context.Background(), testActor(), CreateTalepRequest{
		RequestType: model.TalepTypeDiger,
		Title:       "Yeni talep",
		Details:     "   ",
	})
	if !apperror.IsBusiness(err) {
		t.Errorf("blank details should be a business error, got %v", err)
	}
}

func TestApproveTalep(t *testing.T) {
	talepID := uuid.New()
	stored := &model.Talep{
		ID:          talepID,
		RequestType: model.TalepTypeMalzemeEkleme,
		Title:       "Yeni malzeme",
		Status:      model.TalepPending,
		RequestedBy: uuid.New(),
	}
	talepRepo := &mockTalepRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
			return stored, nil
		},
		updateFunc: func(ctx context.Context, talep *model.Talep) error {
			return nil
		},
	}
	svc, logRepo := newTalepServiceForTest(t, talepRepo)
	actor := testActor()

	res, err := svc.ApproveTalep(context.Background(), actor, talepID.String())
	if err != nil {
		t.Fatalf("ApproveTalep failed: %v", err)
	}
	if res.Status != model.TalepApproved {
		t.Errorf("status: got %s, want APPROVED", res.Status)
	}
	if res.ReviewedBy == nil || *res.ReviewedBy != actor.ID {
		t.Error("reviewer should be the acting user")
	}
	if res.ReviewedAt == nil {
		t.Error("reviewed_at should be set")
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionApprove {
		t.Error("expected an APPROVE audit entry")
	}
}

func TestApproveTalepNotPending(t *testing.T) {
	for _, status := range []string{model.TalepApproved, model.TalepRejected} {
		talepRepo := &mockTalepRepository{
			getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
				return &model.Talep{ID: id, Status: status}, nil
			},
		}
		svc, _ := newTalepServiceForTest(t, talepRepo)

		_, err := svc.ApproveTalep(context.Background(), testActor(), uuid.NewString())
		if !apperror.IsBusiness(err) {
			t.Errorf("approving a %s talep should be a business error, got %v", status, err)
		}
	}
}

func TestRejectTalep(t *testing.T) {
	talepID := uuid.New()
	stored := &model.Talep{ID: talepID, Title: "Talep", Status: model.TalepPending}
	talepRepo := &mockTalepRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
			return stored, nil
		},
		updateFunc: func(ctx context.Context, talep *model.Talep) error {
			return nil
		},
	}
	svc, logRepo := newTalepServiceForTest(t, talepRepo)

	res, err := svc.RejectTalep(context.Background(), testActor(), talepID.String(), RejectTalepRequest{
		Reason: "Stokta yeterli miktar var",
	})
	if err != nil {
		t.Fatalf("RejectTalep failed: %v", err)
	}
	if res.Status != model.TalepRejected {
		t.Errorf("status: got %s, want REJECTED", res.Status)
	}
	if res.RejectionReason != "Stokta yeterli miktar var" {
		t.Errorf("rejection reason not stored: %s", res.RejectionReason)
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionReject {
		t.Error("expected a REJECT audit entry")
	}
}

func TestRejectTalepRequiresReason(t *testing.T) {
	svc, _ := newTalepServiceForTest(t, &mockTalepRepository{})

	for _, reason := range []string{"", "   "} {
		_, err := svc.RejectTalep(context.Background(), testActor(), uuid.NewString(), RejectTalepRequest{Reason: reason})
		if !apperror.IsBusiness(err) {
			t.Errorf("blank reason %q should be a business error, got %v", reason, err)
		}
	}
}

func TestRejectTalepNotPending(t *testing.T) {
	talepRepo := &mockTalepRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
			return &model.Talep{ID: id, Status: model.TalepApproved}, nil
		},
	}
	svc, _ := newTalepServiceForTest(t, talepRepo)

	_, err := svc.RejectTalep(context.Background(), testActor(), uuid.NewString(), RejectTalepRequest{Reason: "geç kaldı"})
	if !apperror.IsBusiness(err) {
		t.Errorf("rejecting a non-pending talep should be a business error, got %v", err)
	}
}

func TestGetTalepNotFound(t *testing.T) {
	talepRepo := &mockTalepRepository{
		getWithRelsFunc: func(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
			return nil, errNotImplemented
		},
	}
	svc, _ := newTalepServiceForTest(t, talepRepo)

	_, err := svc.GetTalep(context.Background(), uuid.NewString())
	if !apperror.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}

	_, err = svc.GetTalep(context.Background(), "not-a-uuid")
	if !apperror.IsBusiness(err) {
		t.Errorf("malformed id should be a business error, got %v", err)
	}
}
