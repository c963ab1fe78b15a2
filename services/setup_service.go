package services

import (
	"context"
	"errors"
	"strings"

	"hospitality/entity"
	"hospitality/repository"
)

const msgSetupDone = "Setup has already been completed"

// SetupService creates the first admin through the unauthenticated path.
type SetupService struct {
	admins *repository.AdminRepository
	auth   *AuthService
}

func NewSetupService(admins *repository.AdminRepository, auth *AuthService) *SetupService {
	return &SetupService{admins: admins, auth: auth}
}

func (s *SetupService) AdminExists(ctx context.Context) (bool, error) {
	n, err := s.admins.Count(ctx)
	return n > 0, err
}

// Setup succeeds at most once; later or concurrent calls get ErrConflict.
func (s *SetupService) Setup(ctx context.Context, name, email, password string) (string, *entity.Admin, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return "", nil, err
	}
	admin := &entity.Admin{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
		Role:     entity.RoleSuperAdmin,
	}

	created, err := s.admins.CreateFirst(ctx, admin)
	if errors.Is(err, repository.ErrDuplicate) {
		return "", nil, Conflict(msgSetupDone)
	}
	if err != nil {
		return "", nil, err
	}
	if !created {
		return "", nil, Conflict(msgSetupDone)
	}

	token, err := s.auth.IssueToken(admin)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}
