package service

import (
	"context"
	"fmt"

	"depo-backend/internal/middleware"
	"depo-backend/internal/model"
	"depo-backend/internal/repository"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateRoleRequest struct {
	Name              string              `json:"name" binding:"required"`
	Description       string              `json:"description"`
	PagePermissions   []string            `json:"page_permissions"`
	EntityPermissions map[string][]string `json:"entity_permissions"`
}

type UpdateRoleRequest struct {
	Name              string               `json:"name" binding:"required"`
	Description       string               `json:"description"`
	PagePermissions   *[]string            `json:"page_permissions"`
	EntityPermissions *map[string][]string `json:"entity_permissions"`
}

type RoleResponse struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	IsSystem          bool                `json:"is_system"`
	PagePermissions   []string            `json:"page_permissions"`
	EntityPermissions map[string][]string `json:"entity_permissions"`
	CreatedAt         string              `json:"created_at"`
}

// --- Interface ---

type RoleService interface {
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	GetRole(ctx context.Context, id string) (*RoleResponse, error)
	CreateRole(ctx context.Context, actor Actor, req CreateRoleRequest) (*RoleResponse, error)
	UpdateRole(ctx context.Context, actor Actor, id string, req UpdateRoleRequest) (*RoleResponse, error)
	DeleteRole(ctx context.Context, actor Actor, id string) error
}

type roleService struct {
	roleRepo  repository.RoleRepository
	logRepo   repository.LogRepository
	txManager repository.TransactionManager
}

func NewRoleService(roleRepo repository.RoleRepository, logRepo repository.LogRepository, txManager repository.TransactionManager) RoleService {
	return &roleService{roleRepo: roleRepo, logRepo: logRepo, txManager: txManager}
}

// --- Implementation ---

func toRoleResponse(r *model.Role) RoleResponse {
	pages := []string(r.PagePermissions)
	if pages == nil {
		pages = []string{}
	}
	entities := map[string][]string(r.EntityPermissions)
	if entities == nil {
		entities = map[string][]string{}
	}
	return RoleResponse{
		ID:                r.ID.String(),
		Name:              r.Name,
		Description:       r.Description,
		IsSystem:          r.IsSystem,
		PagePermissions:   pages,
		EntityPermissions: entities,
		CreatedAt:         r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// dedupe removes duplicate keys while preserving first occurrence order
func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func (s *roleService) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}

	res := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		res = append(res, toRoleResponse(&roles[i]))
	}
	return res, nil
}

func (s *roleService) GetRole(ctx context.Context, id string) (*RoleResponse, error) {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid role id")
	}

	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, apperror.NotFound("role not found")
	}

	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *roleService) CreateRole(ctx context.Context, actor Actor, req CreateRoleRequest) (*RoleResponse, error) {
	perms := model.EntityPermSet(req.EntityPermissions)
	if perms == nil {
		perms = model.EntityPermSet{}
	}
	if err := perms.Validate(); err != nil {
		return nil, apperror.New("invalid entity permissions: %v", err)
	}

	if _, err := s.roleRepo.GetByName(ctx, req.Name); err == nil {
		return nil, apperror.New("role name already exists")
	}

	role := &model.Role{
		Name:              req.Name,
		Description:       req.Description,
		IsSystem:          false,
		PagePermissions:   model.PageSet(dedupe(req.PagePermissions)),
		EntityPermissions: perms,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.roleRepo.Create(txCtx, role); err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Role", role.ID.String(), "name: "+role.Name))
	})
	if err != nil {
		return nil, err
	}

	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *roleService) UpdateRole(ctx context.Context, actor Actor, id string, req UpdateRoleRequest) (*RoleResponse, error) {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid role id")
	}

	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, apperror.NotFound("role not found")
	}

	if req.Name != role.Name {
		if _, err := s.roleRepo.GetByName(ctx, req.Name); err == nil {
			return nil, apperror.New("role name already exists")
		}
	}

	role.Name = req.Name
	role.Description = req.Description
	if req.PagePermissions != nil {
		role.PagePermissions = model.PageSet(dedupe(*req.PagePermissions))
	}
	if req.EntityPermissions != nil {
		perms := model.EntityPermSet(*req.EntityPermissions)
		if err := perms.Validate(); err != nil {
			return nil, apperror.New("invalid entity permissions: %v", err)
		}
		role.EntityPermissions = perms
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.roleRepo.Update(txCtx, role); err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "Role", role.ID.String(), "name: "+role.Name))
	})
	if err != nil {
		return nil, err
	}

	// Cached permissions are stale now
	middleware.ClearRoleCache(role.ID.String())

	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *roleService) DeleteRole(ctx context.Context, actor Actor, id string) error {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid role id")
	}

	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return apperror.NotFound("role not found")
	}

	if role.IsSystem {
		return apperror.New("cannot delete system role '%s'", role.Name)
	}

	userCount, err := s.roleRepo.CountUsers(ctx, role.ID)
	if err != nil {
		return fmt.Errorf("failed to count role users: %w", err)
	}
	if userCount > 0 {
		return apperror.New("cannot delete role '%s': %d user(s) still assigned", role.Name, userCount)
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.roleRepo.Delete(txCtx, role.ID); err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "Role", role.ID.String(), "name: "+role.Name))
	})
	if err != nil {
		return err
	}

	middleware.ClearRoleCache(role.ID.String())
	return nil
}
