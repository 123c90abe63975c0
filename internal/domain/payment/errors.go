package payment

import "errors"

var (
	// ErrPaymentNotFound indicates the payment doesn't exist.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrProjectNotFound indicates the parent project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid payment input.
	ErrInvalidInput = errors.New("invalid payment input")
)
