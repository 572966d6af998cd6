package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/logger"
	"buxmate-backend/internal/repository"
	"buxmate-backend/internal/security"
)

type invitationService struct {
	invRepo           repository.InvitationRepository
	eventRepo         repository.EventRepository
	userRepo          repository.UserRepository
	noteRepo          repository.NotificationRepository
	tokens            security.InviteTokenGenerator
	emailSvc          EmailService
	baseURL           string
	defaultExpiryDays int
}

func NewInvitationService(
	invRepo repository.InvitationRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	tokens security.InviteTokenGenerator,
	emailSvc EmailService,
	baseURL string,
	defaultExpiryDays int,
) InvitationService {
	return &invitationService{
		invRepo:           invRepo,
		eventRepo:         eventRepo,
		userRepo:          userRepo,
		noteRepo:          noteRepo,
		tokens:            tokens,
		emailSvc:          emailSvc,
		baseURL:           baseURL,
		defaultExpiryDays: defaultExpiryDays,
	}
}

func (s *invitationService) Issue(ctx context.Context, hostID, eventID int32, input IssueInvitationInput) (*domain.Invitation, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, domain.ErrUnauthorized
	}
	if input.Email == "" && input.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: invitation needs an email or a phone number", domain.ErrInvalidInput)
	}

	inv := &domain.Invitation{
		EventID:     eventID,
		GuestName:   input.GuestName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Status:      domain.InvitationStatusPending,
	}

	// Link to a registered account when the email matches one.
	if input.Email != "" {
		user, err := s.userRepo.GetByEmail(ctx, input.Email)
		if err == nil {
			inv.RecipientID = &user.ID
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	expiryDays := s.defaultExpiryDays
	if input.ExpiryDays != nil {
		expiryDays = *input.ExpiryDays
	}
	if expiryDays > 0 {
		expiresAt := time.Now().AddDate(0, 0, expiryDays)
		inv.ExpiresAt = &expiresAt
	}

	if err := s.createWithToken(ctx, inv); err != nil {
		return nil, err
	}

	if inv.Email != "" {
		if err := s.emailSvc.SendInvitation(ctx, inv.Email, inv.GuestName, event.Title, s.inviteLink(inv.InviteToken)); err != nil {
			logger.Warn("Failed to send invitation email", "invitation_id", inv.ID, "error", err)
		}
	}

	return inv, nil
}

// createWithToken issues a fresh token and inserts. A unique violation on the
// token column gets one retry with a new token; any recurrence is surfaced.
func (s *invitationService) createWithToken(ctx context.Context, inv *domain.Invitation) error {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := s.tokens.Generate()
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
		inv.InviteToken = token

		err = s.invRepo.Create(ctx, inv)
		if err == nil {
			return nil
		}
		if errors.Is(err, repository.ErrTokenCollision) {
			continue
		}
		return err
	}
	return fmt.Errorf("%w: could not allocate a unique invite token", domain.ErrStorage)
}

func (s *invitationService) GetByToken(ctx context.Context, token string) (*domain.Invitation, *domain.EventSummary, error) {
	inv, err := s.invRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, inv.EventID)
	if err != nil {
		return nil, nil, err
	}
	summary := event.Summary()
	return inv, &summary, nil
}

func (s *invitationService) Respond(ctx context.Context, token string, response domain.InvitationStatus) (*domain.Invitation, error) {
	if !domain.ValidResponse(response) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidResponse, response)
	}

	inv, err := s.invRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	// Expiry is checked before the status, so an expired-and-responded
	// invitation still reads as expired.
	if inv.Expired(now) {
		return nil, domain.ErrInvitationExpired
	}
	if inv.Terminal() {
		return nil, domain.ErrAlreadyResponded
	}

	ok, err := s.invRepo.UpdateStatusIfPending(ctx, inv.ID, response, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race: someone else transitioned this invitation between
		// our read and the conditional write.
		return nil, domain.ErrAlreadyResponded
	}

	inv.Status = response
	inv.RespondedAt = &now

	s.notifyHost(ctx, inv)

	return inv, nil
}

// notifyHost records a host notification and sends an email, best effort.
// Failures here never undo or fail the response itself.
func (s *invitationService) notifyHost(ctx context.Context, inv *domain.Invitation) {
	event, err := s.eventRepo.GetByID(ctx, inv.EventID)
	if err != nil {
		logger.Warn("Failed to load event for host notification", "event_id", inv.EventID, "error", err)
		return
	}

	guestName := inv.GuestName
	if guestName == "" {
		guestName = inv.Email
	}
	if guestName == "" {
		guestName = inv.PhoneNumber
	}

	verb := "accepted"
	if inv.Status == domain.InvitationStatusDeclined {
		verb = "declined"
	}

	note := &domain.Notification{
		UserID:  event.HostID,
		EventID: event.ID,
		Type:    domain.NotificationGuestResponded,
		Message: fmt.Sprintf("%s %s your invitation to %s", guestName, verb, event.Title),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create host notification", "event_id", event.ID, "error", err)
	}

	host, err := s.userRepo.GetByID(ctx, event.HostID)
	if err != nil {
		logger.Warn("Failed to load host for response email", "host_id", event.HostID, "error", err)
		return
	}
	if err := s.emailSvc.SendGuestResponseNotification(ctx, host.Email, guestName, event.Title, inv.Status); err != nil {
		logger.Warn("Failed to send response email", "host_id", host.ID, "error", err)
	}
}

func (s *invitationService) inviteLink(token string) string {
	return fmt.Sprintf("%s/invite/%s", s.baseURL, token)
}
