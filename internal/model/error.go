package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInvalidStatus   = "INVALID_STATUS"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatus   = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
)
