package dto

import (
	"net/http"
	"strings"
)

// Error codes returned in the error envelope. Domain codes without an ERR_
// equivalent (PRIMARY_RECORD, DOCUMENTS_MISSING, ...) are sent unchanged.
const (
	ErrCodeInternal       = "ERR_INTERNAL"
	ErrCodeNotImplemented = "ERR_NOT_IMPLEMENTED"

	ErrCodeValidation      = "ERR_VALIDATION"
	ErrCodeBadRequest      = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput    = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON     = "ERR_INVALID_JSON"
	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"

	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"

	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeConflict      = "ERR_CONFLICT"
	// ErrCodeInUse rejects deleting a record that others still reference,
	// e.g. an entity that still holds properties.
	ErrCodeInUse        = "ERR_IN_USE"
	ErrCodeInvalidState = "ERR_INVALID_STATE"

	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// codeStatus maps every code the API emits to its HTTP status.
var codeStatus = map[string]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeNotImplemented: http.StatusNotImplemented,

	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,
	ErrCodeInUse:         http.StatusConflict,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,

	ErrCodeRateLimited: http.StatusTooManyRequests,

	"PRIMARY_RECORD":        http.StatusConflict,
	"BATCH_NOT_UPLOADABLE":  http.StatusBadRequest,
	"DOCUMENTS_MISSING":     http.StatusBadRequest,
	"DOCUMENT_MISSING":      http.StatusBadRequest,
	"UNSUPPORTED_FILE_TYPE": http.StatusBadRequest,
	"FILE_TOO_LARGE":        http.StatusRequestEntityTooLarge,
}

// domainAliases translates the generic shared.DomainError codes.
var domainAliases = map[string]string{
	"NOT_FOUND":        ErrCodeNotFound,
	"ALREADY_EXISTS":   ErrCodeAlreadyExists,
	"INVALID_INPUT":    ErrCodeInvalidInput,
	"INVALID_STATE":    ErrCodeInvalidState,
	"UNAUTHORIZED":     ErrCodeUnauthorized,
	"FORBIDDEN":        ErrCodeForbidden,
	"CONFLICT":         ErrCodeConflict,
	"IN_USE":           ErrCodeInUse,
	"NOT_IMPLEMENTED":  ErrCodeNotImplemented,
	"VALIDATION_ERROR": ErrCodeValidation,
	"BAD_REQUEST":      ErrCodeBadRequest,
	"INTERNAL_ERROR":   ErrCodeInternal,
}

// NormalizeErrorCode returns the ERR_ form of a generic domain code and any
// other code unchanged.
func NormalizeErrorCode(code string) string {
	if alias, ok := domainAliases[code]; ok {
		return alias
	}
	return code
}

// DomainHTTPStatus resolves the status for a code coming out of the domain
// layer. Unlisted INVALID_* and MISSING_* codes are client errors; anything
// else unknown is a 500.
func DomainHTTPStatus(code string) int {
	code = NormalizeErrorCode(code)
	if status, ok := codeStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasPrefix(code, "MISSING_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
