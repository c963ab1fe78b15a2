package services

import (
	"context"
	"strings"

	"hospitality/entity"
	"hospitality/repository"
)

const contentEntity = "content"

type ContentService struct {
	Repo   *repository.ContentRepository
	Events EventPublisher
}

func NewContentService(repo *repository.ContentRepository, events EventPublisher) *ContentService {
	if events == nil {
		events = NopPublisher{}
	}
	return &ContentService{Repo: repo, Events: events}
}

func (s *ContentService) List(ctx context.Context, section string) ([]entity.Content, error) {
	return s.Repo.List(ctx, strings.TrimSpace(section))
}

func (s *ContentService) Section(ctx context.Context, section string) (map[string]string, error) {
	return s.Repo.Section(ctx, section)
}

// Upsert writes one block keyed by (section, key).
func (s *ContentService) Upsert(ctx context.Context, section, key, value string) (*entity.Content, error) {
	section, key = strings.TrimSpace(section), strings.TrimSpace(key)
	if section == "" || key == "" {
		return nil, Invalid("section and key are required")
	}
	c, err := s.Repo.Upsert(ctx, section, key, value)
	if err != nil {
		return nil, err
	}
	s.Events.Publish(ctx, newEvent(contentEntity, ActionUpdated, c.ID, c))
	return c, nil
}

// Bulk makes the section hold exactly the entries of data and returns the
// resulting key -> value map.
func (s *ContentService) Bulk(ctx context.Context, section string, data map[string]string) (map[string]string, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, Invalid("section is required")
	}
	if data == nil {
		return nil, Invalid("data is required")
	}
	for k := range data {
		if strings.TrimSpace(k) == "" {
			return nil, Invalid("content keys must not be empty")
		}
	}
	out, err := s.Repo.ReplaceSection(ctx, section, data)
	if err != nil {
		return nil, err
	}
	s.Events.Publish(ctx, newEvent(contentEntity, ActionUpdated, section, out))
	return out, nil
}
