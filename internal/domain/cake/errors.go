package cake

import "errors"

var (
	// ErrCakeNotFound indicates the cake line item doesn't exist.
	ErrCakeNotFound = errors.New("cake not found")
	// ErrProjectNotFound indicates the parent project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid cake input.
	ErrInvalidInput = errors.New("invalid cake input")
)
