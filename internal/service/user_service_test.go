package service

import (
	"context"
	"testing"

	"jogging_tracker/internal/model"
	"jogging_tracker/internal/utils"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, role string) *model.User {
	t.Helper()
	hash, err := utils.HashPassword("pw1234", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &model.User{Email: email, PasswordHash: hash, Role: role}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserService_ListUsers_RegularOnly(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	seedUser(t, repo, "a@x.com", model.RoleRegular)
	seedUser(t, repo, "boss@x.com", model.RoleAdmin)
	seedUser(t, repo, "mgr@x.com", model.RoleManager)
	seedUser(t, repo, "b@x.com", model.RoleRegular)

	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, model.RoleRegular, u.Role)
	}
}

func TestUserService_GetUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	seeded := seedUser(t, repo, "a@x.com", model.RoleRegular)

	user, err := svc.GetUser(context.Background(), seeded.ID)

	assert.NoError(t, err)
	assert.Equal(t, seeded.Email, user.Email)
}

func TestUserService_GetUser_AdminHiddenFromListing(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	boss := seedUser(t, repo, "boss@x.com", model.RoleAdmin)

	_, err := svc.GetUser(context.Background(), boss.ID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_CreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	user, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Email:    "new@x.com",
		Password: "pw1234",
		Role:     model.RoleManager,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.RoleManager, user.Role)
	assert.True(t, utils.CheckPasswordHash("pw1234", user.PasswordHash))
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	seedUser(t, repo, "a@x.com", model.RoleRegular)

	_, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Email:    "a@x.com",
		Password: "pw1234",
		Role:     model.RoleRegular,
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserService_UpdateUser_PasswordOnlyWhenProvided(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	seeded := seedUser(t, repo, "a@x.com", model.RoleRegular)
	originalHash := seeded.PasswordHash

	newRole := model.RoleManager
	updated, err := svc.UpdateUser(context.Background(), seeded.ID, model.UpdateUserRequest{Role: &newRole})

	assert.NoError(t, err)
	assert.Equal(t, model.RoleManager, updated.Role)
	assert.Equal(t, originalHash, updated.PasswordHash)

	newPassword := "changed123"
	updated, err = svc.UpdateUser(context.Background(), seeded.ID, model.UpdateUserRequest{Password: &newPassword})

	assert.NoError(t, err)
	assert.NotEqual(t, originalHash, updated.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("changed123", updated.PasswordHash))
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	seedUser(t, repo, "a@x.com", model.RoleRegular)
	other := seedUser(t, repo, "b@x.com", model.RoleRegular)

	taken := "a@x.com"
	_, err := svc.UpdateUser(context.Background(), other.ID, model.UpdateUserRequest{Email: &taken})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	newRole := model.RoleAdmin
	_, err := svc.UpdateUser(context.Background(), 404, model.UpdateUserRequest{Role: &newRole})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	seeded := seedUser(t, repo, "a@x.com", model.RoleRegular)

	assert.NoError(t, svc.DeleteUser(context.Background(), seeded.ID))
	assert.Empty(t, repo.users)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), seeded.ID), ErrUserNotFound)
}
