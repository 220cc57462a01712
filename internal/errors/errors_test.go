package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate email", ErrEmailTaken, http.StatusBadRequest, "EMAIL_TAKEN"},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"bad date", ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
		{"wrapped unauthorized", fmt.Errorf("%w: token expired", ErrUnauthorized), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"missing user", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"processing", NewProcessingError("decode image", errors.New("unknown format")), http.StatusInternalServerError, "PROCESSING_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestProcessingError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("unknown format")
	err := NewProcessingError("decode image", cause)

	assert.Equal(t, "decode image: unknown format", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "decode image: unknown format", MapErrorToHTTP(err).ToErrorResponse().Error)
}
