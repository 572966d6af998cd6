package service

import (
	"context"
	"errors"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/logger"
	"buxmate-backend/internal/repository"
)

type rosterService struct {
	invRepo      repository.InvitationRepository
	eventRepo    repository.EventRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

func NewRosterService(
	invRepo repository.InvitationRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
) RosterService {
	return &rosterService{
		invRepo:      invRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

func (s *rosterService) Project(ctx context.Context, hostID, eventID int32) ([]domain.GuestRosterEntry, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, domain.ErrUnauthorized
	}

	invs, err := s.invRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.GuestRosterEntry, 0, len(invs))
	for _, inv := range invs {
		identity := s.resolveIdentity(ctx, &inv)

		activities, err := s.activityRepo.ListRefsForInvitation(ctx, inv.ID)
		if err != nil {
			// A broken assignment lookup should not hide the guest.
			logger.Warn("Failed to load activities for roster entry", "invitation_id", inv.ID, "error", err)
			activities = nil
		}
		if activities == nil {
			activities = []domain.ActivityRef{}
		}

		entries = append(entries, domain.GuestRosterEntry{
			InvitationID: inv.ID,
			Name:         identity.DisplayName(),
			Email:        identity.DisplayEmail(),
			PhoneNumber:  identity.DisplayPhone(),
			Status:       inv.Status,
			RespondedAt:  inv.RespondedAt,
			InvitedOn:    inv.CreatedOn,
			Activities:   activities,
		})
	}
	return entries, nil
}

// resolveIdentity prefers the linked account; a missing or unreadable user
// row degrades to the contact fields held on the invitation.
func (s *rosterService) resolveIdentity(ctx context.Context, inv *domain.Invitation) domain.GuestIdentity {
	contact := domain.ContactIdentity(inv.GuestName, inv.Email, inv.PhoneNumber)
	if inv.RecipientID == nil {
		return contact
	}
	user, err := s.userRepo.GetByID(ctx, *inv.RecipientID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Failed to load recipient for roster entry", "invitation_id", inv.ID, "error", err)
		}
		return contact
	}
	identity := domain.RegisteredIdentity(user)
	// Carry the invitation fallbacks for fields the account leaves blank.
	identity.Name = inv.GuestName
	identity.Email = inv.Email
	identity.Phone = inv.PhoneNumber
	return identity
}
