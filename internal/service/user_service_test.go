package service

import (
	"context"
	"testing"
	"time"

	"depo-backend/internal/model"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepository struct {
	getByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	getByEmailFunc    func(ctx context.Context, email string) (*model.User, error)
	getByIDFunc       func(ctx context.Context, id uuid.UUID) (*model.User, error)
	createFunc        func(ctx context.Context, user *model.User) error
	updateFunc        func(ctx context.Context, user *model.User) error
	deleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) List(ctx context.Context, search string, page, limit int) ([]model.User, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

type mockRoleRepository struct {
	createFunc     func(ctx context.Context, role *model.Role) error
	getByIDFunc    func(ctx context.Context, id uuid.UUID) (*model.Role, error)
	getByNameFunc  func(ctx context.Context, name string) (*model.Role, error)
	listFunc       func(ctx context.Context) ([]model.Role, error)
	updateFunc     func(ctx context.Context, role *model.Role) error
	deleteFunc     func(ctx context.Context, id uuid.UUID) error
	countUsersFunc func(ctx context.Context, roleID uuid.UUID) (int64, error)
}

func (m *mockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, role)
	}
	return errNotImplemented
}

func (m *mockRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockRoleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return nil, errNotImplemented
}

func (m *mockRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockRoleRepository) Update(ctx context.Context, role *model.Role) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, role)
	}
	return errNotImplemented
}

func (m *mockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *mockRoleRepository) CountUsers(ctx context.Context, roleID uuid.UUID) (int64, error) {
	if m.countUsersFunc != nil {
		return m.countUsersFunc(ctx, roleID)
	}
	return 0, nil
}

type mockTokenRepository struct {
	tokens map[string]*model.RefreshToken
}

func newMockTokenRepository() *mockTokenRepository {
	return &mockTokenRepository{tokens: make(map[string]*model.RefreshToken)}
}

func (m *mockTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	m.tokens[token.Token] = token
	return nil
}

func (m *mockTokenRepository) GetByToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	stored, ok := m.tokens[token]
	if !ok {
		return nil, errNotImplemented
	}
	return stored, nil
}

func (m *mockTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for k, v := range m.tokens {
		if v.ID == id {
			delete(m.tokens, k)
			return nil
		}
	}
	return nil
}

func (m *mockTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	for k, v := range m.tokens {
		if v.UserID == userID {
			delete(m.tokens, k)
		}
	}
	return nil
}

func testUser(t *testing.T, password string, active bool) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return &model.User{
		ID:       uuid.New(),
		Username: "depocu",
		Email:    "depocu@example.com",
		FullName: "Depo Sorumlusu",
		Password: string(hashed),
		RoleID:   uuid.New(),
		IsActive: active,
	}
}

func newUserServiceForTest(t *testing.T, userRepo *mockUserRepository, tokenRepo *mockTokenRepository) (UserService, *mockLogRepository) {
	t.Helper()
	logRepo := &mockLogRepository{}
	svc := NewUserService(userRepo, &mockRoleRepository{}, tokenRepo, logRepo, &mockTxManager{})
	return svc, logRepo
}

func TestLogin(t *testing.T) {
	user := testUser(t, "s3cret", true)
	userRepo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			if username != user.Username {
				return nil, errNotImplemented
			}
			return user, nil
		},
	}
	tokenRepo := newMockTokenRepository()
	svc, logRepo := newUserServiceForTest(t, userRepo, tokenRepo)

	tokens, res, err := svc.Login(context.Background(), LoginRequest{Username: "depocu", Password: "s3cret"}, "10.0.0.1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tokens.Token == "" || tokens.RefreshToken == "" {
		t.Error("expected both access and refresh tokens")
	}
	if res.Username != user.Username {
		t.Errorf("username: got %s", res.Username)
	}
	if _, ok := tokenRepo.tokens[tokens.RefreshToken]; !ok {
		t.Error("refresh token should be persisted")
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].Action != model.LogActionLogin {
		t.Error("expected a LOGIN audit entry")
	}
	if logRepo.entries[0].SourceIP != "10.0.0.1" {
		t.Errorf("audit IP: got %s", logRepo.entries[0].SourceIP)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "s3cret", true)
	userRepo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return user, nil
		},
	}
	svc, logRepo := newUserServiceForTest(t, userRepo, newMockTokenRepository())

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "depocu", Password: "wrong"}, "10.0.0.1")
	if !apperror.IsBusiness(err) {
		t.Errorf("wrong password should be a business error, got %v", err)
	}
	if len(logRepo.entries) != 0 {
		t.Error("failed login must not write an audit entry")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	userRepo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return nil, errNotImplemented
		},
	}
	svc, _ := newUserServiceForTest(t, userRepo, newMockTokenRepository())

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "x"}, "")
	if !apperror.IsBusiness(err) {
		t.Errorf("unknown user should be a business error, got %v", err)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	user := testUser(t, "s3cret", false)
	userRepo := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			return user, nil
		},
	}
	svc, _ := newUserServiceForTest(t, userRepo, newMockTokenRepository())

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "depocu", Password: "s3cret"}, "")
	if !apperror.IsBusiness(err) {
		t.Errorf("inactive user should be a business error, got %v", err)
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	user := testUser(t, "s3cret", true)
	userRepo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
			return user, nil
		},
	}
	tokenRepo := newMockTokenRepository()
	if err := tokenRepo.Create(context.Background(), &model.RefreshToken{
		UserID:    user.ID,
		Token:     "old-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatal(err)
	}
	svc, _ := newUserServiceForTest(t, userRepo, tokenRepo)

	tokens, err := svc.RefreshToken(context.Background(), RefreshTokenRequest{RefreshToken: "old-token"})
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if tokens.RefreshToken == "old-token" {
		t.Error("refresh token should be rotated")
	}
	if _, ok := tokenRepo.tokens["old-token"]; ok {
		t.Error("old refresh token should be revoked")
	}
	if _, ok := tokenRepo.tokens[tokens.RefreshToken]; !ok {
		t.Error("new refresh token should be persisted")
	}
}

func TestRefreshTokenExpired(t *testing.T) {
	tokenRepo := newMockTokenRepository()
	if err := tokenRepo.Create(context.Background(), &model.RefreshToken{
		UserID:    uuid.New(),
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatal(err)
	}
	svc, _ := newUserServiceForTest(t, &mockUserRepository{}, tokenRepo)

	_, err := svc.RefreshToken(context.Background(), RefreshTokenRequest{RefreshToken: "stale"})
	if !apperror.IsBusiness(err) {
		t.Errorf("expired token should be a business error, got %v", err)
	}
	if _, ok := tokenRepo.tokens["stale"]; ok {
		t.Error("expired token should be removed")
	}
}

func TestLogoutUnknownTokenIsNoop(t *testing.T) {
	svc, _ := newUserServiceForTest(t, &mockUserRepository{}, newMockTokenRepository())

	if err := svc.Logout(context.Background(), "never-issued"); err != nil {
		t.Errorf("logout with unknown token should not fail, got %v", err)
	}
}
