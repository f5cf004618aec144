package service

import (
	"context"
	"errors"

	"depo-backend/internal/model"
	"depo-backend/internal/repository"

	"github.com/google/uuid"
)

var errNotImplemented = errors.New("not implemented")

// mockTxManager runs the callback without a real transaction
type mockTxManager struct{}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type mockLogRepository struct {
	createFunc func(ctx context.Context, entry *model.SystemLog) error
	entries    []*model.SystemLog
}

func (m *mockLogRepository) Create(ctx context.Context, entry *model.SystemLog) error {
	m.entries = append(m.entries, entry)
	if m.createFunc != nil {
		return m.createFunc(ctx, entry)
	}
	return nil
}

func (m *mockLogRepository) List(ctx context.Context, filter repository.LogFilter) ([]model.SystemLog, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockLogRepository) Recent(ctx context.Context, limit int) ([]model.SystemLog, error) {
	return nil, errNotImplemented
}

type mockTalepRepository struct {
	createFunc       func(ctx context.Context, talep *model.Talep) error
	getByIDFunc      func(ctx context.Context, id uuid.UUID) (*model.Talep, error)
	getWithRelsFunc  func(ctx context.Context, id uuid.UUID) (*model.Talep, error)
	listFunc         func(ctx context.Context, status string, page, limit int) ([]model.Talep, int64, error)
	listByUserFunc   func(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.Talep, int64, error)
	countPendingFunc func(ctx context.Context) (int64, error)
	updateFunc       func(ctx context.Context, talep *model.Talep) error
}

func (m *mockTalepRepository) Create(ctx context.Context, talep *model.Talep) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, talep)
	}
	return errNotImplemented
}

func (m *mockTalepRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockTalepRepository) GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Talep, error) {
	if m.getWithRelsFunc != nil {
		return m.getWithRelsFunc(ctx, id)
	}
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockTalepRepository) List(ctx context.Context, status string, page, limit int) ([]model.Talep, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, status, page, limit)
	}
	return nil, 0, errNotImplemented
}

func (m *mockTalepRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.Talep, int64, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID, page, limit)
	}
	return nil, 0, errNotImplemented
}

func (m *mockTalepRepository) CountPending(ctx context.Context) (int64, error) {
	if m.countPendingFunc != nil {
		return m.countPendingFunc(ctx)
	}
	return 0, nil
}

func (m *mockTalepRepository) Update(ctx context.Context, talep *model.Talep) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, talep)
	}
	return errNotImplemented
}

type mockZimmetRepository struct {
	createFunc  func(ctx context.Context, zimmet *model.Zimmet) error
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*model.Zimmet, error)
	listFunc    func(ctx context.Context, status, personelID, bolumID string, page, limit int) ([]model.Zimmet, int64, error)
	updateFunc  func(ctx context.Context, zimmet *model.Zimmet) error
	deleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockZimmetRepository) Create(ctx context.Context, zimmet *model.Zimmet) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, zimmet)
	}
	return errNotImplemented
}

func (m *mockZimmetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Zimmet, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockZimmetRepository) List(ctx context.Context, status, personelID, bolumID string, page, limit int) ([]model.Zimmet, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, status, personelID, bolumID, page, limit)
	}
	return nil, 0, errNotImplemented
}

func (m *mockZimmetRepository) Update(ctx context.Context, zimmet *model.Zimmet) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, zimmet)
	}
	return errNotImplemented
}

func (m *mockZimmetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

type mockMalzemeRepository struct {
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*model.Malzeme, error)
}

func (m *mockMalzemeRepository) Create(ctx context.Context, malzeme *model.Malzeme) error {
	return errNotImplemented
}

func (m *mockMalzemeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Malzeme, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockMalzemeRepository) GetByCode(ctx context.Context, code string) (*model.Malzeme, error) {
	return nil, errNotImplemented
}

func (m *mockMalzemeRepository) List(ctx context.Context, kategoriID, search string, page, limit int) ([]model.Malzeme, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockMalzemeRepository) Update(ctx context.Context, malzeme *model.Malzeme) error {
	return errNotImplemented
}

func (m *mockMalzemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}

func (m *mockMalzemeRepository) CountActiveZimmetler(ctx context.Context, malzemeID uuid.UUID) (int64, error) {
	return 0, nil
}

type mockPersonelRepository struct {
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*model.Personel, error)
}

func (m *mockPersonelRepository) Create(ctx context.Context, personel *model.Personel) error {
	return errNotImplemented
}

func (m *mockPersonelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Personel, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockPersonelRepository) List(ctx context.Context, bolumID, search string, page, limit int) ([]model.Personel, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockPersonelRepository) Update(ctx context.Context, personel *model.Personel) error {
	return errNotImplemented
}

func (m *mockPersonelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}

type mockBolumRepository struct {
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*model.Bolum, error)
}

func (m *mockBolumRepository) Create(ctx context.Context, bolum *model.Bolum) error {
	return errNotImplemented
}

func (m *mockBolumRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Bolum, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockBolumRepository) List(ctx context.Context, search string, page, limit int) ([]model.Bolum, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockBolumRepository) Update(ctx context.Context, bolum *model.Bolum) error {
	return errNotImplemented
}

func (m *mockBolumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}
