package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/logger"
	"buxmate-backend/internal/repository"
)

const (
	verificationTTL  = 10 * time.Minute
	maxCodeAttempts  = 5
	verificationCode = 6 // digits
)

type verificationService struct {
	verRepo  repository.VerificationRepository
	userRepo repository.UserRepository
	emailSvc EmailService
}

func NewVerificationService(
	verRepo repository.VerificationRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) VerificationService {
	return &verificationService{
		verRepo:  verRepo,
		userRepo: userRepo,
		emailSvc: emailSvc,
	}
}

func (s *verificationService) RequestCode(ctx context.Context, userID int32, phoneNumber string) (string, error) {
	if phoneNumber == "" {
		return "", fmt.Errorf("%w: phone number is required", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash verification code: %w", err)
	}

	v := &domain.PhoneVerification{
		ID:          uuid.New().String(),
		UserID:      userID,
		PhoneNumber: phoneNumber,
		CodeHash:    string(hash),
		ExpiresAt:   time.Now().Add(verificationTTL),
	}
	if err := s.verRepo.Create(ctx, v); err != nil {
		return "", err
	}

	// No SMS gateway wired up; the code goes to the account email instead.
	if err := s.emailSvc.SendVerificationCode(ctx, user.Email, code); err != nil {
		logger.Warn("Failed to send verification code", "user_id", userID, "error", err)
	}

	return v.ID, nil
}

func (s *verificationService) VerifyCode(ctx context.Context, userID int32, verificationID, code string) error {
	v, err := s.verRepo.GetByID(ctx, verificationID)
	if err != nil {
		return err
	}
	if v.UserID != userID {
		return domain.ErrUnauthorized
	}
	if time.Now().After(v.ExpiresAt) {
		return fmt.Errorf("%w: verification code expired", domain.ErrInvalidInput)
	}
	if v.Attempts >= maxCodeAttempts {
		return fmt.Errorf("%w: too many attempts", domain.ErrInvalidInput)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(v.CodeHash), []byte(code)); err != nil {
		if incErr := s.verRepo.IncrementAttempts(ctx, verificationID); incErr != nil {
			logger.Warn("Failed to record verification attempt", "verification_id", verificationID, "error", incErr)
		}
		return fmt.Errorf("%w: wrong verification code", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.PhoneNumber = v.PhoneNumber
	user.PhoneVerified = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.verRepo.Delete(ctx, verificationID); err != nil {
		logger.Warn("Failed to delete used verification", "verification_id", verificationID, "error", err)
	}
	return nil
}

func (s *verificationService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.verRepo.DeleteExpired(ctx, time.Now())
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < verificationCode; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", verificationCode, n), nil
}
