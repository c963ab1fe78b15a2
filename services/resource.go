package services

import (
	"context"
	"errors"
	"net/url"

	"hospitality/entity"
	"hospitality/repository"
)

// Resource describes one document kind served by the generic CRUD stack.
type Resource[T any] struct {
	Name    string // route segment and event entity, e.g. "menu"
	Label   string // used in messages, e.g. "Menu item"
	Filters []repository.Filter
	Order   string

	// Prepare sets server defaults on a new document before validation.
	Prepare func(item *T)
	// Validate runs on create and update after the struct tags passed.
	Validate func(item *T) error
	// Transition checks an update against the stored document.
	Transition func(old, item *T) error
}

// ResourceService implements list/get/create/update/delete for a Resource.
type ResourceService[T any] struct {
	Resource Resource[T]
	Repo     *repository.Repository[T]
	Events   EventPublisher
}

func NewResourceService[T any](res Resource[T], repo *repository.Repository[T], events EventPublisher) *ResourceService[T] {
	if events == nil {
		events = NopPublisher{}
	}
	return &ResourceService[T]{Resource: res, Repo: repo, Events: events}
}

func (s *ResourceService[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	return s.Repo.List(ctx, s.Resource.Filters, query, s.Resource.Order)
}

func (s *ResourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	return item, nil
}

// Create stores item with a fresh id; client supplied ids and timestamps
// are discarded.
func (s *ResourceService[T]) Create(ctx context.Context, item *T) error {
	*base(item) = entity.Document{}
	if s.Resource.Prepare != nil {
		s.Resource.Prepare(item)
	}
	if s.Resource.Validate != nil {
		if err := s.Resource.Validate(item); err != nil {
			return err
		}
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return s.translate(err)
	}
	s.Events.Publish(ctx, newEvent(s.Resource.Name, ActionCreated, base(item).ID, item))
	return nil
}

// Update loads the stored document, lets apply merge the changes onto it,
// then revalidates and saves the result.
func (s *ResourceService[T]) Update(ctx context.Context, id string, apply func(item *T) error) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *item
	stored := *base(item)

	if err := apply(item); err != nil {
		return nil, err
	}
	*base(item) = stored

	if s.Resource.Validate != nil {
		if err := s.Resource.Validate(item); err != nil {
			return nil, err
		}
	}
	if s.Resource.Transition != nil {
		if err := s.Resource.Transition(&old, item); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.Save(ctx, item); err != nil {
		return nil, s.translate(err)
	}
	s.Events.Publish(ctx, newEvent(s.Resource.Name, ActionUpdated, id, item))
	return item, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return s.translate(err)
	}
	s.Events.Publish(ctx, newEvent(s.Resource.Name, ActionDeleted, id, nil))
	return nil
}

func (s *ResourceService[T]) translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NotFound(s.Resource.Label + " not found")
	case errors.Is(err, repository.ErrDuplicate):
		return Conflict(s.Resource.Label + " already exists")
	}
	return err
}

func base[T any](item *T) *entity.Document {
	return any(item).(entity.Record).Base()
}
