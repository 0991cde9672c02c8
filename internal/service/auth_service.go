package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tastetrack/internal/auth"
	"tastetrack/internal/errors"
	"tastetrack/internal/model"
	"tastetrack/internal/repository"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	// Login returns a signed token and the user's role. Unknown user and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, userID, password string) (token string, role model.Role, err error)
	// Refresh re-issues a token for a user whose still-valid token was
	// already verified by the JWT middleware. The role is re-read from the
	// user store so a demoted user cannot keep an old role alive.
	Refresh(ctx context.Context, userID string) (token string, role model.Role, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *authService) Login(ctx context.Context, userID, password string) (string, model.Role, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return "", "", fmt.Errorf("find user: %w", err)
		}
		log.Printf("failed login attempt for user %s", userID)
		return "", "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("failed login attempt for user %s", userID)
		return "", "", errors.ErrInvalidCredentials
	}

	if !user.Role.Valid() {
		log.Printf("failed login attempt for user %s", userID)
		return "", "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.UserID, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("generate token: %w", err)
	}

	log.Printf("user %s authenticated with role %s", user.UserID, user.Role)
	return token, user.Role, nil
}

func (s *authService) Refresh(ctx context.Context, userID string) (string, model.Role, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return "", "", fmt.Errorf("find user: %w", err)
		}
		return "", "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.UserID, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("generate token: %w", err)
	}

	log.Printf("token refreshed for user %s", user.UserID)
	return token, user.Role, nil
}
