package postgres

import (
	"context"
	"database/sql"
	"time"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `INSERT INTO events (host_id, title, slug, description, date, timezone, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_on, updated_on`
	err := r.db.QueryRowContext(ctx, query,
		event.HostID, event.Title, event.Slug, event.Description, event.Date,
		event.Timezone, time.Now(),
	).Scan(&event.ID, &event.CreatedOn, &event.UpdatedOn)
	return mapError(err)
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	query := `SELECT id, host_id, title, slug, description, date, timezone, created_on, updated_on FROM events WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT id, host_id, title, slug, description, date, timezone, created_on, updated_on FROM events WHERE slug = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slug))
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `UPDATE events SET title = $1, description = $2, date = $3, timezone = $4, updated_on = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query,
		event.Title, event.Description, event.Date, event.Timezone, time.Now(), event.ID)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ListByHost(ctx context.Context, hostID int32) ([]domain.Event, error) {
	query := `SELECT id, host_id, title, slug, description, date, timezone, created_on, updated_on FROM events WHERE host_id = $1 ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.HostID, &e.Title, &e.Slug, &e.Description,
			&e.Date, &e.Timezone, &e.CreatedOn, &e.UpdatedOn); err != nil {
			return nil, mapError(err)
		}
		events = append(events, e)
	}
	return events, mapError(rows.Err())
}

func (r *eventRepository) scanOne(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.HostID, &e.Title, &e.Slug, &e.Description,
		&e.Date, &e.Timezone, &e.CreatedOn, &e.UpdatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}
