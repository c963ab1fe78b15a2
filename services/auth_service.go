package services

import (
	"context"
	"errors"
	"time"

	"hospitality/entity"
	"hospitality/repository"
	"hospitality/utils"

	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "Invalid credentials"

// AuthService verifies admin credentials and issues tokens.
type AuthService struct {
	admins    *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(admins *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{admins: admins, jwtSecret: secret, jwtTTL: ttl}
}

// Login never tells the caller which of email or password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.Admin, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, Unauthorized(msgInvalidCredentials)
	}

	token, err := s.IssueToken(admin)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (s *AuthService) IssueToken(admin *entity.Admin) (string, error) {
	return utils.GenerateToken(admin.ID, admin.Email, admin.Role, s.jwtSecret, s.jwtTTL)
}

// Verify resolves the admin behind already validated claims.
func (s *AuthService) Verify(ctx context.Context, claims *utils.Claims) (*entity.Admin, error) {
	if claims == nil {
		return nil, Unauthorized("Invalid token")
	}
	admin, err := s.admins.FindByID(ctx, claims.Subject)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, Unauthorized("Admin no longer exists")
	}
	return admin, err
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
