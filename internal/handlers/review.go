package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"homenest-backend/internal/errs"
	"homenest-backend/internal/models"
	"homenest-backend/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ReviewHandler struct {
	store ReviewStore
	now   func() time.Time
}

func NewReviewHandler(store ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: store, now: time.Now}
}

// --- GET /api/reviews ---

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) error {
	return h.list(w, r, repository.ReviewFilter{})
}

// --- GET /api/reviews/property/{propertyId} ---

func (h *ReviewHandler) ByProperty(w http.ResponseWriter, r *http.Request) error {
	return h.list(w, r, repository.ReviewFilter{PropertyID: pathParam(r, "propertyId")})
}

// --- GET /api/reviews/user/{userEmail} ---

func (h *ReviewHandler) ByUser(w http.ResponseWriter, r *http.Request) error {
	return h.list(w, r, repository.ReviewFilter{UserEmail: pathParam(r, "userEmail")})
}

func (h *ReviewHandler) list(w http.ResponseWriter, r *http.Request, filter repository.ReviewFilter) error {
	reviews, err := h.store.List(r.Context(), filter)
	if err != nil {
		return errs.Store("Error fetching reviews", err)
	}
	reviews = nonNil(reviews)

	zerolog.Ctx(r.Context()).Debug().
		Str("property_id", filter.PropertyID).
		Str("user_email", filter.UserEmail).
		Int("count", len(reviews)).
		Msg("fetched reviews")
	writeJSON(w, http.StatusOK, reviews)
	return nil
}

// --- POST /api/reviews ---
// createdAt is always the server's clock; a client value is discarded.

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) error {
	body, err := readBody(w, r)
	if err != nil {
		return errs.Validation("Invalid request body", err)
	}

	var review models.Review
	if err := json.Unmarshal(body, &review); err != nil {
		return errs.Validation("Invalid request body", err)
	}
	review.ID = bson.ObjectID{}
	review.CreatedAt = h.now().UTC()

	if err := review.Validate(); err != nil {
		return errs.Validation("Missing required fields", err)
	}

	if err := h.store.Create(r.Context(), &review); err != nil {
		return errs.Store("Error adding review", err)
	}

	zerolog.Ctx(r.Context()).Info().
		Str("id", review.ID.Hex()).
		Str("property_id", review.PropertyID).
		Str("user_email", review.UserEmail).
		Msg("review added")

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":    "Review added successfully",
		"insertedId": review.ID.Hex(),
	})
	return nil
}

// --- DELETE /api/reviews/{id} ---

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id := pathParam(r, "id")

	deleted, err := h.store.Delete(r.Context(), id)
	if err != nil {
		return errs.Store("Error deleting review", err)
	}
	if !deleted {
		return errs.NotFound("Review not found", fmt.Errorf("no review with id %s", id))
	}

	zerolog.Ctx(r.Context()).Info().Str("id", id).Msg("review deleted")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Review deleted successfully",
	})
	return nil
}
