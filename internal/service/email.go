package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"buxmate-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendInvitation(ctx context.Context, email, guestName, eventTitle, inviteLink string) error {
	subject := fmt.Sprintf("You're invited to %s", eventTitle)
	body := fmt.Sprintf("Hello %s,\n\nYou have been invited to %s.\n\nView the invitation and respond here:\n\n%s\n\nBest regards,\nThe Buxmate Team", displayName(guestName), eventTitle, inviteLink)
	return s.send(email, guestName, subject, body)
}

func (s *emailService) SendInvitationReminder(ctx context.Context, email, guestName, eventTitle, inviteLink string) error {
	subject := fmt.Sprintf("Reminder: your invitation to %s", eventTitle)
	body := fmt.Sprintf("Hello %s,\n\nYour invitation to %s is still waiting for a response and will expire soon.\n\nRespond here:\n\n%s\n\nBest regards,\nThe Buxmate Team", displayName(guestName), eventTitle, inviteLink)
	return s.send(email, guestName, subject, body)
}

func (s *emailService) SendGuestResponseNotification(ctx context.Context, hostEmail, guestName, eventTitle string, response domain.InvitationStatus) error {
	verb := "accepted"
	if response == domain.InvitationStatusDeclined {
		verb = "declined"
	}
	subject := fmt.Sprintf("%s %s your invitation", guestName, verb)
	body := fmt.Sprintf("Hello,\n\n%s has %s the invitation to %s.\n\nBest regards,\nThe Buxmate Team", guestName, verb, eventTitle)
	return s.send(hostEmail, "", subject, body)
}

func (s *emailService) SendVerificationCode(ctx context.Context, email, code string) error {
	body := fmt.Sprintf("Your Buxmate verification code is: %s\n\nThe code expires in 10 minutes.", code)
	return s.send(email, "", "Your verification code", body)
}

func displayName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}
