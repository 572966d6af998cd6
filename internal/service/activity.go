package service

import (
	"context"
	"fmt"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	eventRepo    repository.EventRepository
	invRepo      repository.InvitationRepository
}

func NewActivityService(
	activityRepo repository.ActivityRepository,
	eventRepo repository.EventRepository,
	invRepo repository.InvitationRepository,
) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		eventRepo:    eventRepo,
		invRepo:      invRepo,
	}
}

func (s *activityService) AddActivity(ctx context.Context, hostID int32, activity *domain.Activity) error {
	if err := s.authorizeEvent(ctx, hostID, activity.EventID); err != nil {
		return err
	}
	if activity.Title == "" {
		return fmt.Errorf("%w: activity title is required", domain.ErrInvalidInput)
	}
	if activity.CostCents < 0 {
		return fmt.Errorf("%w: activity cost cannot be negative", domain.ErrInvalidInput)
	}
	return s.activityRepo.Create(ctx, activity)
}

func (s *activityService) UpdateActivity(ctx context.Context, hostID int32, activity *domain.Activity) error {
	existing, err := s.activityRepo.GetByID(ctx, activity.ID)
	if err != nil {
		return err
	}
	if err := s.authorizeEvent(ctx, hostID, existing.EventID); err != nil {
		return err
	}
	if activity.CostCents < 0 {
		return fmt.Errorf("%w: activity cost cannot be negative", domain.ErrInvalidInput)
	}
	activity.EventID = existing.EventID
	return s.activityRepo.Update(ctx, activity)
}

func (s *activityService) DeleteActivity(ctx context.Context, hostID, activityID int32) error {
	existing, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}
	if err := s.authorizeEvent(ctx, hostID, existing.EventID); err != nil {
		return err
	}
	return s.activityRepo.Delete(ctx, activityID)
}

func (s *activityService) ListActivities(ctx context.Context, eventID int32) ([]domain.Activity, error) {
	return s.activityRepo.ListByEvent(ctx, eventID)
}

func (s *activityService) AssignGuest(ctx context.Context, hostID, activityID, invitationID int32) error {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}
	if err := s.authorizeEvent(ctx, hostID, activity.EventID); err != nil {
		return err
	}
	inv, err := s.invRepo.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv.EventID != activity.EventID {
		return fmt.Errorf("%w: invitation belongs to a different event", domain.ErrInvalidInput)
	}
	return s.activityRepo.AssignInvitation(ctx, activityID, invitationID)
}

func (s *activityService) UnassignGuest(ctx context.Context, hostID, activityID, invitationID int32) error {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}
	if err := s.authorizeEvent(ctx, hostID, activity.EventID); err != nil {
		return err
	}
	return s.activityRepo.UnassignInvitation(ctx, activityID, invitationID)
}

func (s *activityService) CostSummary(ctx context.Context, hostID, eventID int32) (*domain.CostSummary, error) {
	if err := s.authorizeEvent(ctx, hostID, eventID); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	summary := &domain.CostSummary{EventID: eventID, Activities: []domain.ActivityCost{}}
	for _, a := range activities {
		count, err := s.activityRepo.CountAssignments(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		share := int32(0)
		if count > 0 {
			share = a.CostCents / count
		}
		summary.TotalCents += a.CostCents
		summary.Activities = append(summary.Activities, domain.ActivityCost{
			ActivityID:    a.ID,
			Title:         a.Title,
			CostCents:     a.CostCents,
			AssignedCount: count,
			ShareCents:    share,
		})
	}
	return summary, nil
}

func (s *activityService) authorizeEvent(ctx context.Context, hostID, eventID int32) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.HostID != hostID {
		return domain.ErrUnauthorized
	}
	return nil
}
