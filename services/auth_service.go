package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleOrganizer = "organizer"
	BcryptCost    = 12
	tokenTTL      = 24 * time.Hour
)

type LoginInput struct {
	Password string `json:"password"`
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, error)
}

type authService struct {
	passwordHash []byte
	jwtSecret    []byte
	now          func() time.Time
}

// NewAuthService authenticates the single organizer account whose bcrypt
// hash comes from configuration.
func NewAuthService(passwordHash, jwtSecret string) AuthService {
	return &authService{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		now:          time.Now,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (string, error) {
	if input.Password == "" {
		return "", fmt.Errorf("%w: password is required", ErrValidationFailed)
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrAuthenticationFailed
		}
		return "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"role": RoleOrganizer,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// HashPassword produces the value expected in ORGANIZER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is required", ErrValidationFailed)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
