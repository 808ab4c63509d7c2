package handlers

import (
	"net/http"

	"homenest-backend/internal/database"
	"homenest-backend/internal/errs"

	"github.com/rs/zerolog"
)

type SliderHandler struct {
	store  SliderStore
	dbName string
}

func NewSliderHandler(store SliderStore, dbName string) *SliderHandler {
	return &SliderHandler{store: store, dbName: dbName}
}

// --- GET /api/sliders ---

func (h *SliderHandler) List(w http.ResponseWriter, r *http.Request) error {
	sliders, err := h.store.List(r.Context())
	if err != nil {
		return errs.Store("Error fetching sliders", err)
	}
	sliders = nonNil(sliders)

	zerolog.Ctx(r.Context()).Debug().Int("count", len(sliders)).Msg("fetched sliders")
	writeJSON(w, http.StatusOK, sliders)
	return nil
}

// --- GET /api/test ---

func (h *SliderHandler) Status(w http.ResponseWriter, r *http.Request) error {
	count, err := h.store.Count(r.Context())
	if err != nil {
		return errs.Store("Database error", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "Connected to MongoDB",
		"database":      h.dbName,
		"collection":    database.SlidersCollection,
		"documentCount": count,
	})
	return nil
}
