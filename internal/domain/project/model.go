package project

import "time"

// Status represents the lifecycle status of a project
type Status string

const (
	StatusPlanning  Status = "PLANNING"
	StatusConfirmed Status = "CONFIRMED"
	StatusProducing Status = "PRODUCING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Bucket is a display grouping of statuses. Every status maps to exactly
// one bucket.
type Bucket string

const (
	BucketWorking   Bucket = "WORKING"
	BucketPlanning  Bucket = "PLANNING"
	BucketCompleted Bucket = "COMPLETED"
	BucketCancelled Bucket = "CANCELLED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusConfirmed, StatusProducing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s is an end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Bucket returns the display bucket for s, or "" for an unknown status.
func (s Status) Bucket() Bucket {
	switch s {
	case StatusPlanning:
		return BucketPlanning
	case StatusProducing, StatusConfirmed:
		return BucketWorking
	case StatusCompleted:
		return BucketCompleted
	case StatusCancelled:
		return BucketCancelled
	default:
		return ""
	}
}

// Project represents a catering event. Cake and payment line items hang
// off it in their own packages.
type Project struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	Name          string    `json:"name"`
	EventDate     string    `json:"event_date"` // "2006-01-02", optionally with a trailing time
	DeliveryNotes string    `json:"delivery_notes,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}

// Summary is a lightweight representation for listing
type Summary struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Name         string    `json:"name"`
	EventDate    string    `json:"event_date"`
	Status       Status    `json:"status"`
	CakeCount    int       `json:"cake_count"`
	TotalCents   int64     `json:"total_cents"`
	PaidCents    int64     `json:"paid_cents"`
	CreatedAt    time.Time `json:"created_at"`
}
