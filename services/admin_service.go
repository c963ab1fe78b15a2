package services

import (
	"context"
	"errors"
	"strings"

	"hospitality/entity"
	"hospitality/repository"
)

// AdminService manages admin accounts on behalf of a superadmin.
type AdminService struct {
	admins *repository.AdminRepository
	events EventPublisher
}

func NewAdminService(admins *repository.AdminRepository, events EventPublisher) *AdminService {
	if events == nil {
		events = NopPublisher{}
	}
	return &AdminService{admins: admins, events: events}
}

func (s *AdminService) List(ctx context.Context) ([]entity.Admin, error) {
	return s.admins.List(ctx)
}

func (s *AdminService) Create(ctx context.Context, name, email, password, role string) (*entity.Admin, error) {
	if role == "" {
		role = entity.RoleAdmin
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &entity.Admin{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("Admin with this email already exists")
		}
		return nil, err
	}
	s.events.Publish(ctx, newEvent("admins", ActionCreated, admin.ID, admin))
	return admin, nil
}

// Delete removes an admin other than the caller.
func (s *AdminService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return Invalid("You cannot delete your own account")
	}
	if err := s.admins.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Admin not found")
		}
		return err
	}
	s.events.Publish(ctx, newEvent("admins", ActionDeleted, id, nil))
	return nil
}
