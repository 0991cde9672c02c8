package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tastetrack/internal/errors"
	"tastetrack/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "waiter").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo)
		user, err := service.CreateUser(context.Background(), "waiter", "secret99", "")

		require.NoError(t, err)
		assert.Equal(t, "waiter", user.UserID)
		assert.Equal(t, model.RoleUser, user.Role)
		assert.NotEqual(t, "secret99", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret99")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate user id rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "waiter").Return(&model.User{UserID: "waiter"}, nil)

		service := NewUserService(mockRepo)
		user, err := service.CreateUser(context.Background(), "waiter", "secret99", model.RoleUser)

		assert.ErrorIs(t, err, errors.ErrUserAlreadyExists)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("old-pass"), bcryptCost)

	t.Run("empty password keeps the stored hash", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "waiter").Return(&model.User{
			UserID:       "waiter",
			PasswordHash: string(hash),
			Role:         model.RoleUser,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockRepo)
		user, err := service.UpdateUser(context.Background(), "waiter", "", model.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, string(hash), user.PasswordHash)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo)
		user, err := service.UpdateUser(context.Background(), "ghost", "new-pass", model.RoleUser)

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("regular user deleted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "waiter").Return(&model.User{
			UserID: "waiter",
			Role:   model.RoleUser,
		}, nil)
		mockRepo.On("Delete", mock.Anything, "waiter").Return(nil)

		service := NewUserService(mockRepo)
		assert.NoError(t, service.DeleteUser(context.Background(), "waiter"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin accounts cannot be deleted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "admin").Return(&model.User{
			UserID: "admin",
			Role:   model.RoleAdmin,
		}, nil)

		service := NewUserService(mockRepo)
		err := service.DeleteUser(context.Background(), "admin")

		assert.ErrorIs(t, err, errors.ErrAdminUndeletable)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo)
		assert.ErrorIs(t, service.DeleteUser(context.Background(), "ghost"), errors.ErrUserNotFound)
	})
}
