package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"storelens/internal/dataset"
	apierrors "storelens/internal/errors"
	"storelens/internal/services"
)

// SalesHandler serves the sales metrics endpoints. Every endpoint except
// /periods takes a ?period= query parameter (7d, 1m, 3m, 6m, 1y, 2y).
type SalesHandler struct {
	service      *services.AnalyticsService
	logger       *slog.Logger
	errorHandler *apierrors.Handler
}

// NewSalesHandler creates a sales handler.
func NewSalesHandler(service *services.AnalyticsService, logger *slog.Logger, errorHandler *apierrors.Handler) *SalesHandler {
	return &SalesHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "sales_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the sales analytics routes.
func (h *SalesHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/periods", h.GetPeriods)
	r.Get("/summary", h.GetSummary)
	r.Get("/top", h.GetTop)
	r.Get("/efficiency", h.GetEfficiency)
	r.Get("/segments", h.GetSegments)
	r.Get("/correlation", h.GetCorrelation)
	r.Get("/insights/{insight}", h.GetInsight)
	return r
}

// GetPeriods handles GET /api/sales/periods.
func (h *SalesHandler) GetPeriods(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	periods, err := h.service.SalesPeriods(r.Context(), sessionID)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	type periodInfo struct {
		Period string `json:"period"`
		Label  string `json:"label"`
	}
	infos := make([]periodInfo, 0, len(periods))
	for _, p := range periods {
		infos = append(infos, periodInfo{Period: p.String(), Label: p.Label()})
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   infos,
		"count":  len(infos),
	})
}

// GetSummary handles GET /api/sales/summary?period=1m.
func (h *SalesHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sessionID, p, ok := h.sessionAndPeriod(w, r)
	if !ok {
		return
	}
	stats, found, err := h.service.SalesSummary(r.Context(), sessionID, p)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	if !found {
		h.errorHandler.HandleError(w, r, apierrors.NotFoundError("Sales data for period"))
		return
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   stats,
	})
}

// GetTop handles GET /api/sales/top?period=1m&limit=10.
func (h *SalesHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	sessionID, p, ok := h.sessionAndPeriod(w, r)
	if !ok {
		return
	}
	n := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("limit", "limit must be a positive integer"))
			return
		}
		n = parsed
	}
	ranked, err := h.service.SalesTop(r.Context(), sessionID, p, n)
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

// GetEfficiency handles GET /api/sales/efficiency?period=1m.
func (h *SalesHandler) GetEfficiency(w http.ResponseWriter, r *http.Request) {
	sessionID, p, ok := h.sessionAndPeriod(w, r)
	if !ok {
		return
	}
	entries, err := h.service.SalesEfficiency(r.Context(), sessionID, p)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   entries,
		"count":  len(entries),
	})
}

// GetSegments handles GET /api/sales/segments?period=1m.
func (h *SalesHandler) GetSegments(w http.ResponseWriter, r *http.Request) {
	sessionID, p, ok := h.sessionAndPeriod(w, r)
	if !ok {
		return
	}
	segments, err := h.service.SalesSegments(r.Context(), sessionID, p)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   segments,
		"count":  len(segments),
	})
}

// GetCorrelation handles GET /api/sales/correlation?period=1m.
func (h *SalesHandler) GetCorrelation(w http.ResponseWriter, r *http.Request) {
	sessionID, p, ok := h.sessionAndPeriod(w, r)
	if !ok {
		return
	}
	result, err := h.service.SalesCorrelation(r.Context(), sessionID, p)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   result,
	})
}

// GetInsight handles GET /api/sales/insights/{insight}?period=1m.
func (h *SalesHandler) GetInsight(w http.ResponseWriter, r *http.Request) {
	sessionID, p, ok := h.sessionAndPeriod(w, r)
	if !ok {
		return
	}
	insight, ok := services.ParseInsight(chi.URLParam(r, "insight"))
	if !ok {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("insight",
			"Insight must be one of review-efficiency, hidden-gems, underperforming, review-needed, value-for-money"))
		return
	}
	result, err := h.service.SalesInsight(r.Context(), sessionID, insight, p)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	render.JSON(w, r, map[string]any{
		"status":  "success",
		"insight": insight,
		"data":    result,
	})
}

// sessionAndPeriod extracts the session header and the period parameter.
func (h *SalesHandler) sessionAndPeriod(w http.ResponseWriter, r *http.Request) (string, dataset.Period, bool) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return "", 0, false
	}
	raw := r.URL.Query().Get("period")
	if raw == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("period", "period query parameter is required"))
		return "", 0, false
	}
	p, ok := dataset.ParsePeriod(raw)
	if !ok {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("period", "period must be one of 7d, 1m, 3m, 6m, 1y, 2y"))
		return "", 0, false
	}
	return sessionID, p, true
}
