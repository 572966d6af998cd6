package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EventRepository
	repository.InvitationRepository
	repository.ActivityRepository
	repository.NotificationRepository
	repository.VerificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		EventRepository:        NewEventRepository(db),
		InvitationRepository:   NewInvitationRepository(db),
		ActivityRepository:     NewActivityRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		VerificationRepository: NewVerificationRepository(db),
	}
}

// mapError translates driver errors into the domain taxonomy so nothing
// above the repository layer matches on lib/pq types.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrConflict
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}
