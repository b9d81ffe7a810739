package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrTransient           = NewDomainError("TRANSIENT", "Temporary storage failure, retry the request")
)

// InsufficientStockError carries enough detail for the caller to tell
// the buyer which line of the cart cannot be fulfilled.
type InsufficientStockError struct {
	DomainError
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Requested   int       `json:"requested"`
	Available   int       `json:"available"`
}

// Unwrap exposes the embedded DomainError so errors.As callers that
// only care about the code keep working.
func (e *InsufficientStockError) Unwrap() error {
	return &e.DomainError
}

// NewInsufficientStockError creates a detailed insufficient-stock error
func NewInsufficientStockError(productID uuid.UUID, productName string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		DomainError: DomainError{
			Code: ErrInsufficientStock.Code,
			Message: fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
				productName, requested, available),
		},
		ProductID:   productID,
		ProductName: productName,
		Requested:   requested,
		Available:   available,
	}
}
