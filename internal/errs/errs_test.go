package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseOf(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		detail  string
	}{
		{"validation", Validation("Missing required fields", errors.New("title is required")), http.StatusBadRequest, "Missing required fields", "title is required"},
		{"not found without cause", NotFound("Property not found", nil), http.StatusNotFound, "Property not found", "Not Found"},
		{"store", Store("Error fetching sliders", cause), http.StatusInternalServerError, "Error fetching sliders", "connection reset"},
		{"wrapped", fmt.Errorf("handler: %w", NotFound("Review not found", cause)), http.StatusNotFound, "Review not found", "connection reset"},
		{"unclassified", cause, http.StatusInternalServerError, "Internal server error", "connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := ResponseOf(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, resp.Message)
			assert.Equal(t, tt.detail, resp.Error)
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Store("Error adding review", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error adding review: boom", err.Error())
}
