package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "storelens/internal/errors"
	"storelens/internal/services"
)

// OptionsHandler serves the option sales ranking endpoint.
type OptionsHandler struct {
	service      *services.AnalyticsService
	logger       *slog.Logger
	errorHandler *apierrors.Handler
}

// NewOptionsHandler creates an options handler.
func NewOptionsHandler(service *services.AnalyticsService, logger *slog.Logger, errorHandler *apierrors.Handler) *OptionsHandler {
	return &OptionsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "options_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the option analytics routes.
func (h *OptionsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/top", h.GetTop)
	return r
}

// GetTop handles GET /api/options/top.
func (h *OptionsHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	ranked, err := h.service.TopOptions(r.Context(), sessionID)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   ranked,
		"count":  len(ranked),
	})
}
