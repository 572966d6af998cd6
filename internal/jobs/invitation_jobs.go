package jobs

import (
	"context"
	"fmt"
	"time"

	"buxmate-backend/internal/logger"
)

// SendInvitationReminders emails guests whose PENDING invitation expires
// within the configured window. Expiry itself stays lazy: this job only
// reminds, it never mutates invitation status.
func (jr *JobRunner) SendInvitationReminders() {
	jr.runWithRecovery("SendInvitationReminders", func() {
		ctx := context.Background()
		now := time.Now()
		cutoff := now.Add(time.Duration(jr.config.Invitations.ReminderWindowHrs) * time.Hour)

		invs, err := jr.store.InvitationRepository.ListExpiringPending(ctx, now, cutoff)
		if err != nil {
			logger.Error("Failed to list expiring invitations", "error", err)
			return
		}

		sent := 0
		for _, inv := range invs {
			if inv.Email == "" {
				continue
			}
			event, err := jr.store.EventRepository.GetByID(ctx, inv.EventID)
			if err != nil {
				logger.Warn("Failed to load event for reminder", "invitation_id", inv.ID, "error", err)
				continue
			}
			link := fmt.Sprintf("%s/invite/%s", jr.config.Server.BaseURL, inv.InviteToken)
			if err := jr.services.Email.SendInvitationReminder(ctx, inv.Email, inv.GuestName, event.Title, link); err != nil {
				logger.Warn("Failed to send reminder", "invitation_id", inv.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Invitation reminders sent", "candidates", len(invs), "sent", sent)
	})
}

// PurgeVerificationCodes removes expired phone verification challenges.
func (jr *JobRunner) PurgeVerificationCodes() {
	jr.runWithRecovery("PurgeVerificationCodes", func() {
		n, err := jr.services.Verification.PurgeExpired(context.Background())
		if err != nil {
			logger.Error("Failed to purge verification codes", "error", err)
			return
		}
		logger.Info("Expired verification codes purged", "deleted", n)
	})
}
