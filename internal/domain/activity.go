package domain

import (
	"time"
)

// ActivityStatus values stored in the status column.
const (
	ActivityStatusActive = "active"
)

// Activity represents a stored activity record. Identifiers travel as opaque
// strings and timestamps encode as RFC 3339, so the stored shape doubles as
// the wire shape; derived fields live on ActivityDetail only.
type Activity struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"max_participants"`
	Category        string    `json:"category"`
	Organizer       string    `json:"organizer"`
	ContactEmail    string    `json:"contact_email"`
	ImageURL        string    `json:"image_url"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ActivityDetail is an Activity augmented with read-time derived fields.
type ActivityDetail struct {
	Activity
	CurrentRegistrations int  `json:"current_registrations"`
	IsFull               bool `json:"is_full"`
}

// NewActivityDetail attaches the derived registration statistics to an activity.
func NewActivityDetail(activity Activity, registrationCount int) ActivityDetail {
	return ActivityDetail{
		Activity:             activity,
		CurrentRegistrations: registrationCount,
		IsFull:               registrationCount >= activity.MaxParticipants,
	}
}
