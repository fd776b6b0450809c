package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "storelens/internal/errors"
	"storelens/internal/reviews"
	"storelens/internal/services"
)

// ReviewsHandler serves the review analytics endpoints.
type ReviewsHandler struct {
	service      *services.AnalyticsService
	logger       *slog.Logger
	errorHandler *apierrors.Handler
}

// NewReviewsHandler creates a reviews handler.
func NewReviewsHandler(service *services.AnalyticsService, logger *slog.Logger, errorHandler *apierrors.Handler) *ReviewsHandler {
	return &ReviewsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "reviews_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the review analytics routes.
func (h *ReviewsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/frequency", h.GetFrequency)
	r.Get("/sentiment", h.GetSentiment)
	r.Get("/categories", h.GetCategories)
	return r
}

// GetFrequency handles GET /api/reviews/frequency.
func (h *ReviewsHandler) GetFrequency(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	result, err := h.service.ReviewFrequency(r.Context(), sessionID)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   result,
	})
}

// GetSentiment handles GET /api/reviews/sentiment.
func (h *ReviewsHandler) GetSentiment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	result, err := h.service.ReviewSentiment(r.Context(), sessionID)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   result,
	})
}

// GetCategories handles GET /api/reviews/categories?sentiment=positive.
func (h *ReviewsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	label, ok := reviews.ParseLabel(r.URL.Query().Get("sentiment"))
	if !ok {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("sentiment", "sentiment must be positive, neutral or negative"))
		return
	}
	results, err := h.service.ReviewCategories(r.Context(), sessionID, label)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   results,
		"count":  len(results),
	})
}
