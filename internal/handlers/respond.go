package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"homenest-backend/internal/errs"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// APIFunc is a handler that reports failure by returning an error.
type APIFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to net/http. Returned errors are logged and written as
// {message, error} with the status their errs.Kind maps to.
func Handle(fn APIFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errs.ResponseOf(err)

	log := zerolog.Ctx(r.Context())
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(body.Message)

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// nonNil makes listings encode as [] when the store returns no slice.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// pathParam returns the decoded value of a chi URL parameter. chi matches
// against RawPath when the request has one, so only then is the value
// still escaped.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if v, err := url.PathUnescape(value); err == nil {
		return v
	}
	return value
}
