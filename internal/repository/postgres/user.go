package postgres

import (
	"context"
	"database/sql"
	"time"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, auth_subject, email, name, phone_number, phone_verified, avatar_url, created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (auth_subject, email, name, phone_number, phone_verified, avatar_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_on, updated_on`
	err := r.db.QueryRowContext(ctx, query,
		user.AuthSubject, user.Email, user.Name, user.PhoneNumber,
		user.PhoneVerified, user.AvatarURL, time.Now(),
	).Scan(&user.ID, &user.CreatedOn, &user.UpdatedOn)
	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByAuthSubject(ctx context.Context, subject string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_subject = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, subject))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $1, name = $2, phone_number = $3, phone_verified = $4, avatar_url = $5, updated_on = $6 WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		user.Email, user.Name, user.PhoneNumber, user.PhoneVerified,
		user.AvatarURL, time.Now(), user.ID)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.AuthSubject, &u.Email, &u.Name, &u.PhoneNumber,
		&u.PhoneVerified, &u.AvatarURL, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}
