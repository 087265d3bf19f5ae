package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventArtisanCreated EventType = "artisan_created"
	EventArtisanUpdated EventType = "artisan_updated"
	EventArtisanDeleted EventType = "artisan_deleted"
	EventReviewAdded    EventType = "review_added"
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
)

// Event records a successful mutation made through the application.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ArtisanID int         `json:"artisan_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, artisanID int, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ArtisanID: artisanID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// ArtisanChangedPayload payload.
type ArtisanChangedPayload struct {
	Name     string `json:"name"`
	Skill    string `json:"skill"`
	Location string `json:"location"`
}

// ReviewAddedPayload payload.
type ReviewAddedPayload struct {
	ReviewID int     `json:"review_id"`
	Rating   float64 `json:"rating"`
}

// UserPayload payload.
type UserPayload struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}
