package apperrors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInactiveAccount indicates a login attempt against a deactivated user.
var ErrInactiveAccount = errors.New("account is inactive")

// ErrIncorrectPassword indicates a password that does not match the stored hash.
var ErrIncorrectPassword = errors.New("incorrect password")

// ErrInvalidToken indicates a reset token with a bad signature, audience or expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrUpstream indicates a failure in an external collaborator (media host, mail relay, OAuth provider).
var ErrUpstream = errors.New("upstream service error")

// FieldErrors maps a request field name to a human readable message.
// It satisfies error and unwraps to ErrValidation.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match field errors.
func (f FieldErrors) Unwrap() error {
	return ErrValidation
}

// AppError is an error that already knows its HTTP status.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError builds a 400 AppError.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewBadGatewayError builds a 502 AppError for upstream failures.
func NewBadGatewayError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: message, Err: errors.Join(ErrUpstream, err)}
}
