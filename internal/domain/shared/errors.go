package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so that errors.Is(err, ErrNotFound)
// holds for any NOT_FOUND error, not only the sentinel instance.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
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
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists  = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput   = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConflict       = NewDomainError("CONFLICT", "Resource was modified by another request")
	ErrUnauthorized   = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden      = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState   = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrPrimaryRecord  = NewDomainError("PRIMARY_RECORD", "The primary record cannot be deleted")
	ErrInUse          = NewDomainError("IN_USE", "Resource is still referenced")
	ErrNotImplemented = NewDomainError("NOT_IMPLEMENTED", "Feature is not enabled")
)
