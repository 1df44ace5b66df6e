package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jogging_tracker/internal/model"
	"jogging_tracker/internal/repository"
	"jogging_tracker/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("unrecognized role")
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtUtil    *utils.JWTUtil
	blacklist  *utils.TokenBlacklist
	bcryptCost int
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, blacklist *utils.TokenBlacklist, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtUtil:    jwtUtil,
		blacklist:  blacklist,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user account. An empty role defaults to regular;
// anything outside the known set is rejected rather than stored verbatim.
func (s *authService) Register(ctx context.Context, email, password, role string) (*model.User, error) {
	if role == "" {
		role = model.RoleRegular
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed token
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Logout revokes the presented token until its natural expiry. Other tokens
// issued to the same user stay valid.
func (s *authService) Logout(token string) error {
	expiresAt, err := s.jwtUtil.TokenExpiry(token)
	if err != nil {
		return fmt.Errorf("failed to read token expiry: %w", err)
	}
	s.blacklist.Revoke(token, expiresAt)
	return nil
}
