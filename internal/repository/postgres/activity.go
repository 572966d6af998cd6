package postgres

import (
	"context"
	"database/sql"
	"time"

	"buxmate-backend/internal/domain"
	"buxmate-backend/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `INSERT INTO activities (event_id, title, location, start_time, duration_minutes, cost_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query,
		activity.EventID, activity.Title, activity.Location, activity.StartTime,
		activity.DurationMinutes, activity.CostCents, time.Now(),
	).Scan(&activity.ID, &activity.CreatedOn)
	return mapError(err)
}

func (r *activityRepository) GetByID(ctx context.Context, id int32) (*domain.Activity, error) {
	a := &domain.Activity{}
	query := `SELECT id, event_id, title, location, start_time, duration_minutes, cost_cents, created_on FROM activities WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.EventID, &a.Title,
		&a.Location, &a.StartTime, &a.DurationMinutes, &a.CostCents, &a.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	query := `UPDATE activities SET title = $1, location = $2, start_time = $3, duration_minutes = $4, cost_cents = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, activity.Title, activity.Location,
		activity.StartTime, activity.DurationMinutes, activity.CostCents, activity.ID)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *activityRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Activity, error) {
	query := `SELECT id, event_id, title, location, start_time, duration_minutes, cost_cents, created_on FROM activities WHERE event_id = $1 ORDER BY start_time ASC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.EventID, &a.Title, &a.Location,
			&a.StartTime, &a.DurationMinutes, &a.CostCents, &a.CreatedOn); err != nil {
			return nil, mapError(err)
		}
		activities = append(activities, a)
	}
	return activities, mapError(rows.Err())
}

func (r *activityRepository) AssignInvitation(ctx context.Context, activityID, invitationID int32) error {
	query := `INSERT INTO activity_assignments (activity_id, invitation_id, created_on) VALUES ($1, $2, $3)
	          ON CONFLICT (activity_id, invitation_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, activityID, invitationID, time.Now())
	return mapError(err)
}

func (r *activityRepository) UnassignInvitation(ctx context.Context, activityID, invitationID int32) error {
	query := `DELETE FROM activity_assignments WHERE activity_id = $1 AND invitation_id = $2`
	_, err := r.db.ExecContext(ctx, query, activityID, invitationID)
	return mapError(err)
}

func (r *activityRepository) ListRefsForInvitation(ctx context.Context, invitationID int32) ([]domain.ActivityRef, error) {
	query := `SELECT a.id, a.title FROM activities a
	          JOIN activity_assignments aa ON aa.activity_id = a.id
	          WHERE aa.invitation_id = $1 ORDER BY a.start_time ASC`
	rows, err := r.db.QueryContext(ctx, query, invitationID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var refs []domain.ActivityRef
	for rows.Next() {
		var ref domain.ActivityRef
		if err := rows.Scan(&ref.ID, &ref.Title); err != nil {
			return nil, mapError(err)
		}
		refs = append(refs, ref)
	}
	return refs, mapError(rows.Err())
}

func (r *activityRepository) CountAssignments(ctx context.Context, activityID int32) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM activity_assignments WHERE activity_id = $1`
	if err := r.db.QueryRowContext(ctx, query, activityID).Scan(&count); err != nil {
		return 0, mapError(err)
	}
	return count, nil
}
