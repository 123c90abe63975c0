package cake

import "time"

// Cake represents one cake line item of a project
type Cake struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	Description    string    `json:"description"`
	Flavor         string    `json:"flavor,omitempty"`
	Size           string    `json:"size,omitempty"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	CreatedAt      time.Time `json:"created_at"`
	ModifiedAt     time.Time `json:"modified_at"`
}

// Total returns the line total in cents.
func (c *Cake) Total() int64 {
	return int64(c.Quantity) * c.UnitPriceCents
}
