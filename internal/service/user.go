package service

import (
	"context"
	"errors"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// EnsureUser looks up the local row for a verified principal and creates it
// on first contact. Accounts are owned by the identity provider; this row is
// only the local projection invitations and events hang off of.
func (s *userService) EnsureUser(ctx context.Context, subject, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByAuthSubject(ctx, subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user = &domain.User{
		AuthSubject: subject,
		Email:       email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two first requests can race the insert; the unique index on
		// auth_subject makes the loser re-read.
		if errors.Is(err, domain.ErrConflict) {
			return s.userRepo.GetByAuthSubject(ctx, subject)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, phone, avatarURL string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" && phone != user.PhoneNumber {
		user.PhoneNumber = phone
		user.PhoneVerified = false
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
