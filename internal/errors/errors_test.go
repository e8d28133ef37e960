package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "user"}
		assert.Equal(t, "user not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "user"}
		err2 := &NotFoundError{Entity: "user"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "user"}
		err2 := &NotFoundError{Entity: "league"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrUserNotFound, ErrUserNotFound))
		assert.False(t, errors.Is(ErrUserNotFound, ErrLeagueNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.False(t, IsNotFound(ErrInvalidCredentials))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "association", Context: "for this user and player"}
		assert.Equal(t, "association already exists for this user and player", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "association"}
		assert.Equal(t, "association already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAssociationExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrUserNotFound))
	})
}

func TestCandidateLookupError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewCandidateLookupError("exact_name", cause)

	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "candidate lookup failed (exact_name): connection refused", err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsCandidateLookup helper", func(t *testing.T) {
		assert.True(t, IsCandidateLookup(err))
		assert.False(t, IsCandidateLookup(ErrUserNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrUserNotFound))
	})
}
