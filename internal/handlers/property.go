package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"homenest-backend/internal/errs"
	"homenest-backend/internal/models"
	"homenest-backend/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const featuredLimit = 6

type PropertyHandler struct {
	store PropertyStore
}

func NewPropertyHandler(store PropertyStore) *PropertyHandler {
	return &PropertyHandler{store: store}
}

// --- GET /api/properties/featured ---

func (h *PropertyHandler) Featured(w http.ResponseWriter, r *http.Request) error {
	properties, err := h.store.List(r.Context(), repository.NewestFirst, featuredLimit)
	if err != nil {
		return errs.Store("Error fetching featured properties", err)
	}
	properties = nonNil(properties)

	zerolog.Ctx(r.Context()).Debug().Int("count", len(properties)).Msg("fetched featured properties")
	writeJSON(w, http.StatusOK, properties)
	return nil
}

// --- GET /api/properties?sortBy=price|date|title&order=asc|desc ---

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	sort := repository.PropertySort(q.Get("sortBy"), q.Get("order"))

	properties, err := h.store.List(r.Context(), sort, 0)
	if err != nil {
		return errs.Store("Error fetching properties", err)
	}
	properties = nonNil(properties)

	writeJSON(w, http.StatusOK, properties)
	return nil
}

// --- GET /api/properties/{id} ---

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id := pathParam(r, "id")

	property, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		return errs.Store("Error fetching property", err)
	}
	if property == nil {
		return errs.NotFound("Property not found", fmt.Errorf("no property with id %s", id))
	}

	zerolog.Ctx(r.Context()).Debug().Str("id", id).Str("title", property.Title).Msg("fetched property")
	writeJSON(w, http.StatusOK, property)
	return nil
}

// --- POST /api/properties ---

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) error {
	body, err := readBody(w, r)
	if err != nil {
		return errs.Validation("Invalid request body", err)
	}

	var property models.Property
	if err := json.Unmarshal(body, &property); err != nil {
		return errs.Validation("Invalid request body", err)
	}
	// The store assigns identifiers.
	property.ID = bson.ObjectID{}

	if err := property.Validate(); err != nil {
		return errs.Validation("Missing required fields", err)
	}

	if err := h.store.Create(r.Context(), &property); err != nil {
		return errs.Store("Error adding property", err)
	}

	zerolog.Ctx(r.Context()).Info().
		Str("id", property.ID.Hex()).
		Str("title", property.Title).
		Str("user", property.UserName).
		Msg("property added")

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":    "Property added successfully",
		"insertedId": property.ID.Hex(),
	})
	return nil
}

// --- PUT /api/properties/{id} ---
// Only the keys present in the body are written; _id is ignored.

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) error {
	id := pathParam(r, "id")

	body, err := readBody(w, r)
	if err != nil {
		return errs.Validation("Invalid request body", err)
	}

	fields, err := models.PropertyUpdate(body)
	if err != nil {
		if errors.Is(err, models.ErrNoUpdateFields) {
			return errs.Validation("No fields to update", err)
		}
		return errs.Validation("Invalid request body", err)
	}

	matched, err := h.store.Update(r.Context(), id, fields)
	if err != nil {
		return errs.Store("Error updating property", err)
	}
	if !matched {
		return errs.NotFound("Property not found", fmt.Errorf("no property with id %s", id))
	}

	zerolog.Ctx(r.Context()).Info().Str("id", id).Int("fields", len(fields)).Msg("property updated")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Property updated successfully",
	})
	return nil
}

// --- DELETE /api/properties/{id} ---

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id := pathParam(r, "id")

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		return errs.Store("Error deleting property", err)
	}
	if !deleted {
		return errs.NotFound("Property not found", fmt.Errorf("no property with id %s", id))
	}

	zerolog.Ctx(r.Context()).Info().Str("id", id).Msg("property deleted")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Property deleted successfully",
	})
	return nil
}
