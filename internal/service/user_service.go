package service

import (
	"context"
	"fmt"
	"time"

	"jogging_tracker/internal/model"
	"jogging_tracker/internal/repository"
	"jogging_tracker/internal/utils"
)

// UserService provides the staff-facing account management surface. Role
// gating happens in the middleware; these methods assume an authorized caller.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type userService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, bcryptCost int) UserService {
	return &userService{userRepo: userRepo, bcryptCost: bcryptCost}
}

// ListUsers returns all regular-role users. Managers and admins are never
// enumerable through this path.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAllRegular(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a single regular-role user by ID
func (s *userService) GetUser(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.FindRegularByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser creates an account on behalf of a staff member
func (s *userService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// UpdateUser applies partial updates. The password is re-hashed only when a
// new one is supplied.
func (s *userService) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email availability: %w", err)
		}
		if existing != nil {
			return nil, ErrUserAlreadyExists
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
	}
	if req.Role != nil {
		if !model.ValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}
	return user, nil
}

// DeleteUser removes an account and, through the cascade, its jogging records
func (s *userService) DeleteUser(ctx context.Context, id int) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find user for deletion: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user in repository: %w", err)
	}
	return nil
}
