package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // additional context like "for this user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// CandidateLookupError represents a query-layer failure while generating
// discovery candidates. It aborts the whole discovery run since no candidates
// could be computed.
type CandidateLookupError struct {
	Strategy string
	Err      error
}

func (e *CandidateLookupError) Error() string {
	return fmt.Sprintf("candidate lookup failed (%s): %v", e.Strategy, e.Err)
}

func (e *CandidateLookupError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrLeagueNotFound      = &NotFoundError{Entity: "league"}
	ErrPlayerNotFound      = &NotFoundError{Entity: "player"}
	ErrAssociationNotFound = &NotFoundError{Entity: "association"}
)

// Already Exists Errors
var (
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrAssociationExists = &AlreadyExistsError{Entity: "association", Context: "for this user and player"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrAdminRequired      = &AuthenticationError{Message: "admin privileges required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsCandidateLookup checks if an error is a CandidateLookupError
func IsCandidateLookup(err error) bool {
	var lookupErr *CandidateLookupError
	return errors.As(err, &lookupErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCandidateLookupError wraps a query failure from one generation strategy
func NewCandidateLookupError(strategy string, err error) error {
	return &CandidateLookupError{Strategy: strategy, Err: err}
}
