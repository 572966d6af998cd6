package postgres

import (
	"context"
	"database/sql"
	"time"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"
)

type verificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, v *domain.PhoneVerification) error {
	query := `INSERT INTO phone_verifications (id, user_id, phone_number, code_hash, attempts, expires_at, created_on)
	          VALUES ($1, $2, $3, $4, 0, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.UserID, v.PhoneNumber, v.CodeHash, v.ExpiresAt, time.Now())
	return mapError(err)
}

func (r *verificationRepository) GetByID(ctx context.Context, id string) (*domain.PhoneVerification, error) {
	v := &domain.PhoneVerification{}
	query := `SELECT id, user_id, phone_number, code_hash, attempts, expires_at, created_on FROM phone_verifications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.UserID,
		&v.PhoneNumber, &v.CodeHash, &v.Attempts, &v.ExpiresAt, &v.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

func (r *verificationRepository) IncrementAttempts(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE phone_verifications SET attempts = attempts + 1 WHERE id = $1`, id)
	return mapError(err)
}

func (r *verificationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM phone_verifications WHERE id = $1`, id)
	return mapError(err)
}

func (r *verificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM phone_verifications WHERE expires_at < $1`, now)
	if err != nil {
		return 0, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err)
	}
	return n, nil
}
