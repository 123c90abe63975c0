package activity

import "time"

// Action describes what happened to an entity
type Action string

const (
	ActionCreated     Action = "created"
	ActionUpdated     Action = "updated"
	ActionDeleted     Action = "deleted"
	ActionTransition  Action = "status_changed"
	ActionSignedIn    Action = "signed_in"
	ActionTokenCycled Action = "token_refreshed"
)

// Entry is one row of the audit trail
type Entry struct {
	ID         int64     `json:"id"`
	EntityType string    `json:"entity_type"` // customer, project, cake, payment, user
	EntityID   string    `json:"entity_id"`
	Action     Action    `json:"action"`
	ActorID    string    `json:"actor_id,omitempty"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListOptions provides filtering options for listing entries.
type ListOptions struct {
	EntityType string
	EntityID   string
	Limit      int
	Offset     int
}
