package service

import (
	"context"
	"testing"
	"time"

	"depo-backend/internal/model"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
)

func newZimmetServiceForTest(t *testing.T, zimmetRepo *mockZimmetRepository) (ZimmetService, *mockLogRepository) {
	t.Helper()

	malzemeRepo := &mockMalzemeRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Malzeme, error) {
			return &model.Malzeme{ID: id, Name: "EKG cihazı"}, nil
		},
	}
	personelRepo := &mockPersonelRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Personel, error) {
			return &model.Personel{ID: id}, nil
		},
	}
	bolumRepo := &mockBolumRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Bolum, error) {
			return &model.Bolum{ID: id}, nil
		},
	}
	logRepo := &mockLogRepository{}
	svc := NewZimmetService(zimmetRepo, malzemeRepo, personelRepo, bolumRepo, logRepo, &mockTxManager{})
	return svc, logRepo
}

func TestCreateZimmetRequiresHolder(t *testing.T) {
	svc, _ := newZimmetServiceForTest(t, &mockZimmetRepository{})

	_, err := svc.CreateZimmet(context.Background(), testActor(), CreateZimmetRequest{
		MalzemeID: uuid.NewString(),
		Quantity:  1,
	})
	if !apperror.IsBusiness(err) {
		t.Errorf("zimmet without personel or bolum should be a business error, got %v", err)
	}
}

func TestCreateZimmetToPersonel(t *testing.T) {
	personelID := uuid.NewString()
	var created *model.Zimmet
	zimmetRepo := &mockZimmetRepository{
		createFunc: func(ctx context.Context, zimmet *model.Zimmet) error {
			zimmet.ID = uuid.New()
			created = zimmet
			return nil
		},
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Zimmet, error) {
			return created, nil
		},
	}
	svc, logRepo := newZimmetServiceForTest(t, zimmetRepo)

	res, err := svc.CreateZimmet(context.Background(), testActor(), CreateZimmetRequest{
		MalzemeID:  uuid.NewString(),
		Quantity:   2,
		PersonelID: personelID,
	})
	if err != nil {
		t.Fatalf("CreateZimmet failed: %v", err)
	}
	if res.Status != model.ZimmetActive {
		t.Errorf("new zimmet status: got %s, want ACTIVE", res.Status)
	}
	if res.PersonelID == nil || res.PersonelID.String() != personelID {
		t.Error("personel assignment lost")
	}
	if res.AssignedAt.IsZero() {
		t.Error("assigned_at should be set")
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionCreate {
		t.Error("expected a CREATE audit entry")
	}
}

func TestUpdateZimmet(t *testing.T) {
	bolumID := uuid.NewString()
	stored := &model.Zimmet{
		ID:         uuid.New(),
		MalzemeID:  uuid.New(),
		Quantity:   1,
		Status:     model.ZimmetActive,
		AssignedAt: time.Now().Add(-24 * time.Hour),
	}
	zimmetRepo := &mockZimmetRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Zimmet, error) {
			return stored, nil
		},
		updateFunc: func(ctx context.Context, zimmet *model.Zimmet) error {
			return nil
		},
	}
	svc, logRepo := newZimmetServiceForTest(t, zimmetRepo)

	res, err := svc.UpdateZimmet(context.Background(), testActor(), stored.ID.String(), UpdateZimmetRequest{
		Quantity: 3,
		BolumID:  bolumID,
		Note:     "kat değişikliği",
	})
	if err != nil {
		t.Fatalf("UpdateZimmet failed: %v", err)
	}
	if res.Quantity != 3 {
		t.Errorf("quantity: got %d, want 3", res.Quantity)
	}
	if res.BolumID == nil || res.BolumID.String() != bolumID {
		t.Error("bolum assignment lost")
	}
	if res.PersonelID != nil {
		t.Error("personel should be cleared when reassigning to a bolum")
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionUpdate {
		t.Error("expected an UPDATE audit entry")
	}
}

func TestUpdateZimmetBlockedWhenReturned(t *testing.T) {
	zimmetRepo := &mockZimmetRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Zimmet, error) {
			return &model.Zimmet{ID: id, Status: model.ZimmetReturned}, nil
		},
	}
	svc, _ := newZimmetServiceForTest(t, zimmetRepo)

	_, err := svc.UpdateZimmet(context.Background(), testActor(), uuid.NewString(), UpdateZimmetRequest{
		Quantity: 1,
		BolumID:  uuid.NewString(),
	})
	if !apperror.IsBusiness(err) {
		t.Errorf("editing a returned zimmet should be a business error, got %v", err)
	}
}

func TestReturnZimmet(t *testing.T) {
	stored := &model.Zimmet{
		ID:         uuid.New(),
		MalzemeID:  uuid.New(),
		Quantity:   1,
		Status:     model.ZimmetActive,
		AssignedAt: time.Now().Add(-24 * time.Hour),
	}
	zimmetRepo := &mockZimmetRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Zimmet, error) {
			return stored, nil
		},
		updateFunc: func(ctx context.Context, zimmet *model.Zimmet) error {
			return nil
		},
	}
	svc, logRepo := newZimmetServiceForTest(t, zimmetRepo)

	res, err := svc.ReturnZimmet(context.Background(), testActor(), stored.ID.String())
	if err != nil {
		t.Fatalf("ReturnZimmet failed: %v", err)
	}
	if res.Status != model.ZimmetReturned {
		t.Errorf("status: got %s, want RETURNED", res.Status)
	}
	if res.ReturnedAt == nil {
		t.Error("returned_at should be set")
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionReturn {
		t.Error("expected a RETURN audit entry")
	}
}

func TestReturnZimmetAlreadyReturned(t *testing.T) {
	zimmetRepo := &mockZimmetRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Zimmet, error) {
			return &model.Zimmet{ID: id, Status: model.ZimmetReturned}, nil
		},
	}
	svc, _ := newZimmetServiceForTest(t, zimmetRepo)

	_, err := svc.ReturnZimmet(context.Background(), testActor(), uuid.NewString())
	if !apperror.IsBusiness(err) {
		t.Errorf("double return should be a business error, got %v", err)
	}
}

func TestDeleteZimmetBlockedWhileActive(t *testing.T) {
	zimmetRepo := &mockZimmetRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Zimmet, error) {
			return &model.Zimmet{ID: id, Status: model.ZimmetActive}, nil
		},
	}
	svc, _ := newZimmetServiceForTest(t, zimmetRepo)

	err := svc.DeleteZimmet(context.Background(), testActor(), uuid.NewString())
	if !apperror.IsBusiness(err) {
		t.Errorf("deleting an active zimmet should be a business error, got %v", err)
	}
}
