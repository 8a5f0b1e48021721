package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("missing field"), http.StatusBadRequest},
		{Duplicate("email taken"), http.StatusBadRequest},
		{InsufficientInventory("only 2 free"), http.StatusBadRequest},
		{Conflict("still referenced"), http.StatusBadRequest},
		{InvalidCredentials(), http.StatusUnauthorized},
		{NotFound("no such hospital"), http.StatusNotFound},
		{Internal("boom", errors.New("disk full")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.status, HTTPStatus(tc.err), "error: %v", tc.err)
	}
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to delete: %w", Conflict("still referenced"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Internal("database unavailable", cause)
	assert.Contains(t, err.Error(), "database unavailable")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
}
