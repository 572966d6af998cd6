package postgres

import (
	"context"
	"database/sql"
	"time"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, event_id, type, message, read, created_on)
	          VALUES ($1, $2, $3, $4, false, $5) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.EventID, note.Type, note.Message, time.Now(),
	).Scan(&note.ID, &note.CreatedOn)
	return mapError(err)
}

func (r *notificationRepository) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	query := `SELECT id, user_id, event_id, type, message, read, created_on FROM notifications
	          WHERE user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.EventID, &n.Type, &n.Message,
			&n.Read, &n.CreatedOn); err != nil {
			return nil, 0, mapError(err)
		}
		notes = append(notes, n)
	}
	return notes, total, mapError(rows.Err())
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
