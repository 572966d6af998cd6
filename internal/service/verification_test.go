package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"buxmate-backend/internal/domain"
)

type verificationFixture struct {
	verRepo  *MockVerificationRepo
	userRepo *MockUserRepo
	email    *MockEmailService
	svc      VerificationService
}

func newVerificationFixture() *verificationFixture {
	f := &verificationFixture{
		verRepo:  new(MockVerificationRepo),
		userRepo: new(MockUserRepo),
		email:    new(MockEmailService),
	}
	f.svc = NewVerificationService(f.verRepo, f.userRepo, f.email)
	return f
}

func hashCode(t *testing.T, code string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestVerificationService_RequestCode(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesHashedCodeAndEmailsIt", func(t *testing.T) {
		f := newVerificationFixture()
		f.userRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5, Email: "me@test.com"}, nil)

		var sentCode string
		f.email.On("SendVerificationCode", ctx, "me@test.com", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { sentCode = args.String(2) }).Return(nil)

		var stored *domain.PhoneVerification
		f.verRepo.On("Create", ctx, mock.AnythingOfType("*domain.PhoneVerification")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.PhoneVerification) }).Return(nil)

		id, err := f.svc.RequestCode(ctx, 5, "+15551234")
		assert.NoError(t, err)
		assert.NotEmpty(t, id)
		if assert.NotNil(t, stored) {
			assert.Equal(t, id, stored.ID)
			assert.Equal(t, "+15551234", stored.PhoneNumber)
			assert.Len(t, sentCode, 6)
			// The stored hash matches the emailed code and nothing else.
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(sentCode)))
			assert.WithinDuration(t, time.Now().Add(10*time.Minute), stored.ExpiresAt, time.Minute)
		}
	})

	t.Run("MissingPhone", func(t *testing.T) {
		f := newVerificationFixture()

		_, err := f.svc.RequestCode(ctx, 5, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("EmailFailureStillReturnsID", func(t *testing.T) {
		f := newVerificationFixture()
		f.userRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5, Email: "me@test.com"}, nil)
		f.verRepo.On("Create", ctx, mock.AnythingOfType("*domain.PhoneVerification")).Return(nil)
		f.email.On("SendVerificationCode", ctx, "me@test.com", mock.AnythingOfType("string")).Return(domain.ErrStorage)

		id, err := f.svc.RequestCode(ctx, 5, "+15551234")
		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})
}

func TestVerificationService_VerifyCode(t *testing.T) {
	ctx := context.Background()

	t.Run("CorrectCodeVerifiesPhone", func(t *testing.T) {
		f := newVerificationFixture()
		v := &domain.PhoneVerification{
			ID:          "ver-1",
			UserID:      5,
			PhoneNumber: "+15551234",
			CodeHash:    hashCode(t, "123456"),
			ExpiresAt:   time.Now().Add(5 * time.Minute),
		}
		f.verRepo.On("GetByID", ctx, "ver-1").Return(v, nil)
		f.userRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5}, nil)
		f.userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.PhoneVerified && u.PhoneNumber == "+15551234"
		})).Return(nil)
		f.verRepo.On("Delete", ctx, "ver-1").Return(nil)

		err := f.svc.VerifyCode(ctx, 5, "ver-1", "123456")
		assert.NoError(t, err)
	})

	t.Run("WrongCodeCountsAttempt", func(t *testing.T) {
		f := newVerificationFixture()
		v := &domain.PhoneVerification{
			ID:        "ver-1",
			UserID:    5,
			CodeHash:  hashCode(t, "123456"),
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}
		f.verRepo.On("GetByID", ctx, "ver-1").Return(v, nil)
		f.verRepo.On("IncrementAttempts", ctx, "ver-1").Return(nil)

		err := f.svc.VerifyCode(ctx, 5, "ver-1", "654321")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		f.verRepo.AssertCalled(t, "IncrementAttempts", ctx, "ver-1")
		f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ExpiredCode", func(t *testing.T) {
		f := newVerificationFixture()
		v := &domain.PhoneVerification{
			ID:        "ver-1",
			UserID:    5,
			CodeHash:  hashCode(t, "123456"),
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		f.verRepo.On("GetByID", ctx, "ver-1").Return(v, nil)

		err := f.svc.VerifyCode(ctx, 5, "ver-1", "123456")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("TooManyAttempts", func(t *testing.T) {
		f := newVerificationFixture()
		v := &domain.PhoneVerification{
			ID:        "ver-1",
			UserID:    5,
			CodeHash:  hashCode(t, "123456"),
			ExpiresAt: time.Now().Add(5 * time.Minute),
			Attempts:  5,
		}
		f.verRepo.On("GetByID", ctx, "ver-1").Return(v, nil)

		err := f.svc.VerifyCode(ctx, 5, "ver-1", "123456")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("WrongOwner", func(t *testing.T) {
		f := newVerificationFixture()
		v := &domain.PhoneVerification{
			ID:        "ver-1",
			UserID:    5,
			CodeHash:  hashCode(t, "123456"),
			ExpiresAt: time.Now().Add(5 * time.Minute),
		}
		f.verRepo.On("GetByID", ctx, "ver-1").Return(v, nil)

		err := f.svc.VerifyCode(ctx, 99, "ver-1", "123456")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
