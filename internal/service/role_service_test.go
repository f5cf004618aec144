package service

import (
	"context"
	"reflect"
	"testing"

	"depo-backend/internal/model"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
)

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"dashboard", "cariler", "dashboard", "", "logs", "cariler"})
	want := []string{"dashboard", "cariler", "logs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCreateRole(t *testing.T) {
	roleRepo := &mockRoleRepository{
		getByNameFunc: func(ctx context.Context, name string) (*model.Role, error) {
			return nil, errNotImplemented // name is free
		},
		createFunc: func(ctx context.Context, role *model.Role) error {
			role.ID = uuid.New()
			return nil
		},
	}
	logRepo := &mockLogRepository{}
	svc := NewRoleService(roleRepo, logRepo, &mockTxManager{})

	res, err := svc.CreateRole(context.Background(), testActor(), CreateRoleRequest{
		Name:              "depo_sorumlusu",
		PagePermissions:   []string{"dashboard", "urunler", "dashboard"},
		EntityPermissions: map[string][]string{"malzeme": {"add", "edit"}},
	})
	if err != nil {
		t.Fatalf("CreateRole failed: %v", err)
	}
	if !reflect.DeepEqual(res.PagePermissions, []string{"dashboard", "urunler"}) {
		t.Errorf("page permissions should be deduped, got %v", res.PagePermissions)
	}
	if res.IsSystem {
		t.Error("created roles must not be system roles")
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionCreate {
		t.Error("expected a CREATE audit entry")
	}
}

func TestCreateRoleRejectsUnknownAction(t *testing.T) {
	svc := NewRoleService(&mockRoleRepository{}, &mockLogRepository{}, &mockTxManager{})

	_, err := svc.CreateRole(context.Background(), testActor(), CreateRoleRequest{
		Name:              "broken",
		EntityPermissions: map[string][]string{"cari": {"add", "approve"}},
	})
	if !apperror.IsBusiness(err) {
		t.Errorf("unknown entity action should be a business error, got %v", err)
	}
}

func TestCreateRoleDuplicateName(t *testing.T) {
	roleRepo := &mockRoleRepository{
		getByNameFunc: func(ctx context.Context, name string) (*model.Role, error) {
			return &model.Role{ID: uuid.New(), Name: name}, nil
		},
	}
	svc := NewRoleService(roleRepo, &mockLogRepository{}, &mockTxManager{})

	_, err := svc.CreateRole(context.Background(), testActor(), CreateRoleRequest{Name: "admin"})
	if !apperror.IsBusiness(err) {
		t.Errorf("duplicate name should be a business error, got %v", err)
	}
}

func TestDeleteRoleBlockedForSystemRole(t *testing.T) {
	roleRepo := &mockRoleRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Role, error) {
			return &model.Role{ID: id, Name: "admin", IsSystem: true}, nil
		},
	}
	svc := NewRoleService(roleRepo, &mockLogRepository{}, &mockTxManager{})

	err := svc.DeleteRole(context.Background(), testActor(), uuid.NewString())
	if !apperror.IsBusiness(err) {
		t.Errorf("deleting a system role should be a business error, got %v", err)
	}
}

func TestDeleteRoleBlockedWhileInUse(t *testing.T) {
	roleRepo := &mockRoleRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Role, error) {
			return &model.Role{ID: id, Name: "hemsire"}, nil
		},
		countUsersFunc: func(ctx context.Context, roleID uuid.UUID) (int64, error) {
			return 3, nil
		},
	}
	svc := NewRoleService(roleRepo, &mockLogRepository{}, &mockTxManager{})

	err := svc.DeleteRole(context.Background(), testActor(), uuid.NewString())
	if !apperror.IsBusiness(err) {
		t.Errorf("deleting a role in use should be a business error, got %v", err)
	}
}

func TestDeleteRole(t *testing.T) {
	deleted := false
	roleRepo := &mockRoleRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.Role, error) {
			return &model.Role{ID: id, Name: "eski_rol"}, nil
		},
		deleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	logRepo := &mockLogRepository{}
	svc := NewRoleService(roleRepo, logRepo, &mockTxManager{})

	if err := svc.DeleteRole(context.Background(), testActor(), uuid.NewString()); err != nil {
		t.Fatalf("DeleteRole failed: %v", err)
	}
	if !deleted {
		t.Error("repository delete was not called")
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionDelete {
		t.Error("expected a DELETE audit entry")
	}
}
