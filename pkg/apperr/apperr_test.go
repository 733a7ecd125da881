package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Conflict("duplicate"), http.StatusBadRequest},
		{CapacityExceeded("full"), http.StatusBadRequest},
		{Unauthenticated("no token"), http.StatusUnauthorized},
		{Forbidden("nope"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Internal("boom", errors.New("cause")), http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusCode(tc.err), tc.err.Error())
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "missing", PublicMessage(NotFound("missing")))
	assert.Equal(t, "Server error", PublicMessage(errors.New("db exploded")))
	assert.Equal(t, "Server error", PublicMessage(Internal("db exploded", nil)))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("context: %w", NotFound("missing"))
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Internal("boom", cause)
	assert.ErrorIs(t, err, cause)
}
