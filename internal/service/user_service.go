package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tastetrack/internal/errors"
	"tastetrack/internal/model"
	"tastetrack/internal/repository"
)

const bcryptCost = 10

// UserService handles staff account management.
type UserService interface {
	CreateUser(ctx context.Context, userID, password string, role model.Role) (*model.User, error)
	UpdateUser(ctx context.Context, userID, password string, role model.Role) (*model.User, error)
	DeleteUser(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateUser registers a staff account with a hashed password.
func (s *userService) CreateUser(ctx context.Context, userID, password string, role model.Role) (*model.User, error) {
	existing, err := s.repo.FindByID(ctx, userID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if existing != nil {
		log.Printf("attempt to create duplicate user %s", userID)
		return nil, errors.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if role == "" {
		role = model.RoleUser
	}
	user := &model.User{
		UserID:       userID,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Printf("user %s created with role %s", userID, role)
	return user, nil
}

// UpdateUser replaces a user's password and role.
func (s *userService) UpdateUser(ctx context.Context, userID, password string, role model.Role) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if role != "" {
		user.Role = role
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	log.Printf("user %s updated", userID)
	return user, nil
}

// DeleteUser removes a staff account. Admin accounts cannot be deleted.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if user.Role == model.RoleAdmin {
		log.Printf("attempt to delete admin user %s", userID)
		return errors.ErrAdminUndeletable
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	log.Printf("user %s deleted", userID)
	return nil
}

// GetUser fetches one user record.
func (s *userService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// ListUsers lists all staff accounts.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
