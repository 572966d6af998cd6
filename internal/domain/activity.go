package domain

import "time"

type Activity struct {
	ID              int32     `json:"id"`
	EventID         int32     `json:"event_id"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int32     `json:"duration_minutes"`
	CostCents       int32     `json:"cost_cents"`
	CreatedOn       time.Time `json:"created_on"`
}

// ActivityRef is the assignment view carried on a roster entry.
type ActivityRef struct {
	ID    int32  `json:"id"`
	Title string `json:"title"`
}

// ActivityCost is one line of an event cost summary. ShareCents is the even
// split of CostCents across the activity's assigned guests; zero guests means
// the full cost stays with the host.
type ActivityCost struct {
	ActivityID    int32  `json:"activity_id"`
	Title         string `json:"title"`
	CostCents     int32  `json:"cost_cents"`
	AssignedCount int32  `json:"assigned_count"`
	ShareCents    int32  `json:"share_cents"`
}

type CostSummary struct {
	EventID    int32          `json:"event_id"`
	TotalCents int32          `json:"total_cents"`
	Activities []ActivityCost `json:"activities"`
}
