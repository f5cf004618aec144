package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"depo-backend/internal/model"
	"depo-backend/internal/repository"
	"depo-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- DTOs ---

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	RoleID   string `json:"role_id" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	FullName string `json:"full_name"`
	RoleID   string `json:"role_id"`
	IsActive *bool  `json:"is_active"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	RoleID    uuid.UUID `json:"role_id"`
	RoleName  string    `json:"role_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// UserService defines the business logic for users and authentication
type UserService interface {
	Login(ctx context.Context, req LoginRequest, ip string) (*TokenResponse, *UserResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	CreateUser(ctx context.Context, actor Actor, req CreateUserRequest) (*UserResponse, error)
	GetUserByID(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context, search string, page, limit int) ([]UserResponse, int64, error)
	UpdateUser(ctx context.Context, actor Actor, id string, req UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, actor Actor, id string) error
}

type userService struct {
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	tokenRepo repository.RefreshTokenRepository
	logRepo   repository.LogRepository
	txManager repository.TransactionManager
}

func NewUserService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenRepo repository.RefreshTokenRepository,
	logRepo repository.LogRepository,
	txManager repository.TransactionManager,
) UserService {
	return &userService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		tokenRepo: tokenRepo,
		logRepo:   logRepo,
		txManager: txManager,
	}
}

func mapUserResponse(user *model.User) *UserResponse {
	res := &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		RoleID:    user.RoleID,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
	if user.Role != nil {
		res.RoleName = user.Role.Name
	}
	return res
}

func signAccessToken(user *model.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"role_id":  user.RoleID.String(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}
	return token.SignedString([]byte(secret))
}

func newRefreshTokenString() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest, ip string) (*TokenResponse, *UserResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, nil, apperror.New("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, nil, apperror.New("invalid username or password")
	}

	if !user.IsActive {
		return nil, nil, apperror.New("user account is deactivated")
	}

	accessToken, err := signAccessToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sign token: %w", err)
	}

	refreshString, err := newRefreshTokenString()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refresh := &model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshString,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	if err := s.tokenRepo.Create(ctx, refresh); err != nil {
		return nil, nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	actor := Actor{ID: user.ID, Username: user.Username, IP: ip}
	_ = s.logRepo.Create(ctx, auditEntry(actor, model.LogActionLogin, "User", user.ID.String(), ""))

	return &TokenResponse{Token: accessToken, RefreshToken: refreshString}, mapUserResponse(user), nil
}

func (s *userService) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, apperror.New("invalid refresh token")
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.Delete(ctx, stored.ID)
		return nil, apperror.New("refresh token expired")
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, apperror.New("invalid refresh token")
	}
	if !user.IsActive {
		return nil, apperror.New("user account is deactivated")
	}

	accessToken, err := signAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	// Rotate the refresh token
	newString, err := newRefreshTokenString()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := s.tokenRepo.Delete(ctx, stored.ID); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if err := s.tokenRepo.Create(ctx, &model.RefreshToken{
		UserID:    user.ID,
		Token:     newString,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenResponse{Token: accessToken, RefreshToken: newString}, nil
}

func (s *userService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil
	}
	return s.tokenRepo.Delete(ctx, stored.ID)
}

func (s *userService) CreateUser(ctx context.Context, actor Actor, req CreateUserRequest) (*UserResponse, error) {
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, apperror.New("invalid role id")
	}
	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, apperror.New("role not found")
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperror.New("username already exists")
	}
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperror.New("email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: string(hashed),
		RoleID:   role.ID,
		IsActive: true,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "User", user.ID.String(), "username: "+user.Username))
	})
	if err != nil {
		return nil, err
	}

	user.Role = role
	return mapUserResponse(user), nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid user id")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("user not found")
	}
	return mapUserResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context, search string, page, limit int) ([]UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *mapUserResponse(&users[i]))
	}
	return responses, total, nil
}

func (s *userService) UpdateUser(ctx context.Context, actor Actor, id string, req UpdateUserRequest) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid user id")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("user not found")
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
			return nil, apperror.New("username already exists")
		}
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
			return nil, apperror.New("email already exists")
		}
		user.Email = req.Email
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.RoleID != "" {
		roleID, parseErr := uuid.Parse(req.RoleID)
		if parseErr != nil {
			return nil, apperror.New("invalid role id")
		}
		role, roleErr := s.roleRepo.GetByID(ctx, roleID)
		if roleErr != nil {
			return nil, apperror.New("role not found")
		}
		user.RoleID = role.ID
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("failed to hash password: %w", hashErr)
		}
		user.Password = string(hashed)
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Update(txCtx, user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "User", user.ID.String(), "username: "+user.Username))
	})
	if err != nil {
		return nil, err
	}

	return mapUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, actor Actor, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid user id")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.NotFound("user not found")
	}

	if user.ID == actor.ID {
		return apperror.New("cannot delete your own account")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokenRepo.DeleteByUser(txCtx, user.ID); err != nil {
			return fmt.Errorf("failed to revoke refresh tokens: %w", err)
		}
		if err := s.userRepo.Delete(txCtx, user.ID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "User", user.ID.String(), "username: "+user.Username))
	})
}
