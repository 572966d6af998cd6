package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"

	"github.com/lib/pq"
)

type invitationRepository struct {
	db *sql.DB
}

func NewInvitationRepository(db *sql.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

const invitationColumns = `id, event_id, invite_token, recipient_id, guest_name, email, phone_number, status, expires_at, responded_at, created_on`

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `INSERT INTO invitations (event_id, invite_token, recipient_id, guest_name, email, phone_number, status, expires_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query,
		inv.EventID, inv.InviteToken, inv.RecipientID, inv.GuestName, inv.Email,
		inv.PhoneNumber, inv.Status, inv.ExpiresAt, time.Now(),
	).Scan(&inv.ID, &inv.CreatedOn)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		if strings.Contains(pqErr.Constraint, "invite_token") {
			return repository.ErrTokenCollision
		}
		return domain.ErrDuplicateInvitation
	}
	return mapError(err)
}

func (r *invitationRepository) GetByID(ctx context.Context, id int32) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE invite_token = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, token))
}

func (r *invitationRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE event_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// UpdateStatusIfPending is the compare-and-swap the response processor relies
// on: the WHERE clause pins the current status, so two concurrent responders
// cannot both transition the same row.
func (r *invitationRepository) UpdateStatusIfPending(ctx context.Context, id int32, status domain.InvitationStatus, respondedAt time.Time) (bool, error) {
	query := `UPDATE invitations SET status = $1, responded_at = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, status, respondedAt, id, domain.InvitationStatusPending)
	if err != nil {
		return false, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapError(err)
	}
	return n == 1, nil
}

func (r *invitationRepository) ListExpiringPending(ctx context.Context, now, cutoff time.Time) ([]domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations
	          WHERE status = $1 AND expires_at IS NOT NULL AND expires_at > $2 AND expires_at <= $3
	          ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.InvitationStatusPending, now, cutoff)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *invitationRepository) scanOne(row *sql.Row) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	err := row.Scan(&inv.ID, &inv.EventID, &inv.InviteToken, &inv.RecipientID,
		&inv.GuestName, &inv.Email, &inv.PhoneNumber, &inv.Status,
		&inv.ExpiresAt, &inv.RespondedAt, &inv.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return inv, nil
}

func (r *invitationRepository) scanAll(rows *sql.Rows) ([]domain.Invitation, error) {
	var invs []domain.Invitation
	for rows.Next() {
		var inv domain.Invitation
		if err := rows.Scan(&inv.ID, &inv.EventID, &inv.InviteToken, &inv.RecipientID,
			&inv.GuestName, &inv.Email, &inv.PhoneNumber, &inv.Status,
			&inv.ExpiresAt, &inv.RespondedAt, &inv.CreatedOn); err != nil {
			return nil, mapError(err)
		}
		invs = append(invs, inv)
	}
	return invs, mapError(rows.Err())
}
