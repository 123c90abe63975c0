package transport

import (
	"time"

	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/payment"
	"github.com/atelierdoces/backoffice/internal/domain/project"
)

// Wire shapes for mutating requests. Domain request structs stay free
// of serialization concerns; the mapping happens here.

type createCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

func (r createCustomerRequest) domain() customer.CreateRequest {
	return customer.CreateRequest{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Notes:   r.Notes,
	}
}

type updateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func (r updateCustomerRequest) domain(id string) customer.UpdateRequest {
	return customer.UpdateRequest{
		ID:      id,
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Notes:   r.Notes,
	}
}

type createProjectRequest struct {
	CustomerID    string         `json:"customer_id"`
	Name          string         `json:"name"`
	EventDate     string         `json:"event_date"`
	DeliveryNotes string         `json:"delivery_notes,omitempty"`
	Status        project.Status `json:"status,omitempty"`
}

func (r createProjectRequest) domain() project.CreateRequest {
	return project.CreateRequest{
		CustomerID:    r.CustomerID,
		Name:          r.Name,
		EventDate:     r.EventDate,
		DeliveryNotes: r.DeliveryNotes,
		Status:        r.Status,
	}
}

type updateProjectRequest struct {
	Name          *string `json:"name,omitempty"`
	EventDate     *string `json:"event_date,omitempty"`
	DeliveryNotes *string `json:"delivery_notes,omitempty"`
}

func (r updateProjectRequest) domain(id string) project.UpdateRequest {
	return project.UpdateRequest{
		ID:            id,
		Name:          r.Name,
		EventDate:     r.EventDate,
		DeliveryNotes: r.DeliveryNotes,
	}
}

type createCakeRequest struct {
	Description    string `json:"description"`
	Flavor         string `json:"flavor,omitempty"`
	Size           string `json:"size,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

func (r createCakeRequest) domain(projectID string) cake.CreateRequest {
	return cake.CreateRequest{
		ProjectID:      projectID,
		Description:    r.Description,
		Flavor:         r.Flavor,
		Size:           r.Size,
		Quantity:       r.Quantity,
		UnitPriceCents: r.UnitPriceCents,
	}
}

type updateCakeRequest struct {
	Description    *string `json:"description,omitempty"`
	Flavor         *string `json:"flavor,omitempty"`
	Size           *string `json:"size,omitempty"`
	Quantity       *int    `json:"quantity,omitempty"`
	UnitPriceCents *int64  `json:"unit_price_cents,omitempty"`
}

func (r updateCakeRequest) domain(id string) cake.UpdateRequest {
	return cake.UpdateRequest{
		ID:             id,
		Description:    r.Description,
		Flavor:         r.Flavor,
		Size:           r.Size,
		Quantity:       r.Quantity,
		UnitPriceCents: r.UnitPriceCents,
	}
}

type createPaymentRequest struct {
	AmountCents int64          `json:"amount_cents"`
	Method      payment.Method `json:"method"`
	PaidAt      time.Time      `json:"paid_at,omitempty"`
	Note        string         `json:"note,omitempty"`
}

func (r createPaymentRequest) domain(projectID string) payment.CreateRequest {
	return payment.CreateRequest{
		ProjectID:   projectID,
		AmountCents: r.AmountCents,
		Method:      r.Method,
		PaidAt:      r.PaidAt,
		Note:        r.Note,
	}
}
