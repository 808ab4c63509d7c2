package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homenest-backend/internal/errs"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleWritesTaxonomyErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   errs.Response
		level  string
	}{
		{"validation", errs.Validation("Missing required fields", errors.New("title")), http.StatusBadRequest,
			errs.Response{Message: "Missing required fields", Error: "title"}, "warn"},
		{"not found", errs.NotFound("Property not found", nil), http.StatusNotFound,
			errs.Response{Message: "Property not found", Error: "Not Found"}, "warn"},
		{"store", errs.Store("Error fetching sliders", errors.New("timeout")), http.StatusInternalServerError,
			errs.Response{Message: "Error fetching sliders", Error: "timeout"}, "error"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError,
			errs.Response{Message: "Internal server error", Error: "boom"}, "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)

			h := Handle(func(w http.ResponseWriter, r *http.Request) error { return tc.err })
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(log.WithContext(req.Context()))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body errs.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.body, body)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.level, entry["level"])
			assert.EqualValues(t, tc.status, entry["status"])
		})
	}
}

func TestHandleLeavesSuccessAlone(t *testing.T) {
	h := Handle(func(w http.ResponseWriter, r *http.Request) error {
		writeJSON(w, http.StatusCreated, map[string]string{"ok": "yes"})
		return nil
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"ok":"yes"}`, rr.Body.String())
}

func TestReadBodyLimit(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", maxBodyBytes+1)))

	_, err := readBody(rr, req)
	assert.Error(t, err)
}

func TestPathParamDecodesOnce(t *testing.T) {
	withParam := func(target, value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("userEmail", value)
		req := httptest.NewRequest(http.MethodGet, target, nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	// RawPath is set, so chi hands back the escaped segment.
	req := withParam("/api/reviews/user/jo%40example.com", "jo%40example.com")
	require.NotEmpty(t, req.URL.RawPath)
	assert.Equal(t, "jo@example.com", pathParam(req, "userEmail"))

	// No RawPath: chi already matched the decoded path.
	req = withParam("/api/reviews/user/100%2525@example.com", "100%25@example.com")
	require.Empty(t, req.URL.RawPath)
	assert.Equal(t, "100%25@example.com", pathParam(req, "userEmail"))

	assert.Equal(t, "", pathParam(req, "missing"))
}

func TestNonNil(t *testing.T) {
	var none []string
	got := nonNil(none)
	require.NotNil(t, got)
	assert.Empty(t, got)

	some := []string{"a"}
	assert.Equal(t, some, nonNil(some))
}
