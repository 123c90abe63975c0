package payment

import "time"

// Method represents how a payment was made
type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodCard     Method = "card"
	MethodPix      Method = "pix"
)

// Valid reports whether m is a known payment method.
func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard, MethodPix:
		return true
	}
	return false
}

// Payment represents one payment line item of a project
type Payment struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      Method    `json:"method"`
	PaidAt      time.Time `json:"paid_at"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
