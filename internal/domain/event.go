package domain

import "time"

type Event struct {
	ID          int32     `json:"id"`
	HostID      int32     `json:"host_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Timezone    string    `json:"timezone"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// EventSummary is the slice of event data shown to an invitee resolving a
// token, before they have an account or any authorization.
type EventSummary struct {
	ID       int32     `json:"id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Date     time.Time `json:"date"`
	Timezone string    `json:"timezone"`
}

func (e *Event) Summary() EventSummary {
	return EventSummary{
		ID:       e.ID,
		Title:    e.Title,
		Slug:     e.Slug,
		Date:     e.Date,
		Timezone: e.Timezone,
	}
}
