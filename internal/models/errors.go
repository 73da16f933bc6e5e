package models

import "errors"

// Domain errors shared by repositories and services. Callers match them with
// errors.Is; handlers translate them to HTTP status codes.
var (
	ErrNotFound             = errors.New("record not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInsufficientStock    = errors.New("insufficient stock")
)
