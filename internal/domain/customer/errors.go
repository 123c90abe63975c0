package customer

import "errors"

var (
	// ErrCustomerNotFound indicates the customer doesn't exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidInput indicates invalid customer input.
	ErrInvalidInput = errors.New("invalid customer input")
	// ErrHasProjects indicates the customer still has projects attached.
	ErrHasProjects = errors.New("customer has projects")
)
