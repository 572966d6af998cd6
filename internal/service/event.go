package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type eventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) CreateEvent(ctx context.Context, hostID int32, event *domain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	event.HostID = hostID
	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return s.eventRepo.GetBySlug(ctx, slug)
}

func (s *eventService) UpdateEvent(ctx context.Context, hostID int32, event *domain.Event) error {
	existing, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if existing.HostID != hostID {
		return domain.ErrUnauthorized
	}
	if err := validateEvent(event); err != nil {
		return err
	}
	// Slug is immutable after creation; invite links reference it.
	event.Slug = existing.Slug
	event.HostID = existing.HostID
	return s.eventRepo.Update(ctx, event)
}

func (s *eventService) ListMyEvents(ctx context.Context, hostID int32) ([]domain.Event, error) {
	return s.eventRepo.ListByHost(ctx, hostID)
}

func validateEvent(event *domain.Event) error {
	if event.Title == "" {
		return fmt.Errorf("%w: event title is required", domain.ErrInvalidInput)
	}
	if event.Slug != "" && !slugPattern.MatchString(event.Slug) {
		return fmt.Errorf("%w: invalid slug %q", domain.ErrInvalidInput, event.Slug)
	}
	if event.Timezone == "" {
		event.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(event.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidInput, event.Timezone)
	}
	return nil
}
