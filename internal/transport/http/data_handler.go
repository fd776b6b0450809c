package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "storelens/internal/errors"
	"storelens/internal/services"
)

// sessionHeader carries the session ID on every analysis request.
const sessionHeader = "X-Session-ID"

var validate = validator.New()

// DataHandler handles session lifecycle, uploads and stopword management.
type DataHandler struct {
	service        *services.AnalyticsService
	maxUploadBytes int64
	logger         *slog.Logger
	errorHandler   *apierrors.Handler
}

// NewDataHandler creates a data handler.
func NewDataHandler(service *services.AnalyticsService, maxUploadBytes int64, logger *slog.Logger, errorHandler *apierrors.Handler) *DataHandler {
	return &DataHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With(slog.String("component", "data_handler")),
		errorHandler:   errorHandler,
	}
}

// SessionRoutes returns the session lifecycle routes.
func (h *DataHandler) SessionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Post("/", h.CreateSession)
	r.Delete("/{id}", h.DeleteSession)
	return r
}

// DataRoutes returns the upload routes.
func (h *DataHandler) DataRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Post("/{kind}", h.Upload)
	return r
}

// StopwordRoutes returns the stopword management routes.
func (h *DataHandler) StopwordRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.GetStopwords)
	r.Post("/", h.AddStopwords)
	r.Delete("/{word}", h.RemoveStopword)
	r.Post("/reset", h.ResetStopwords)
	return r
}

// CreateSession handles POST /api/sessions.
func (h *DataHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.service.CreateSession(r.Context())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"status":     "success",
		"session_id": sess.ID,
		"created_at": sess.CreatedAt,
	})
}

// DeleteSession handles DELETE /api/sessions/{id}.
func (h *DataHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("id", "Session ID is required"))
		return
	}
	h.service.DeleteSession(id)
	render.JSON(w, r, map[string]any{"status": "success"})
}

// Upload handles POST /api/data/{kind} with a multipart file field named
// "file". kind is one of reviews, options, sales or auto.
func (h *DataHandler) Upload(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	kind := chi.URLParam(r, "kind")

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "Multipart field 'file' is required"))
		return
	}
	defer file.Close()

	result, err := h.service.UploadTable(r.Context(), sessionID, kind, file, header.Filename)
	if err != nil {
		h.logger.WarnContext(r.Context(), "upload rejected",
			slog.String("session_id", sessionID),
			slog.String("kind", kind),
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()),
		)
		h.errorHandler.HandleError(w, r, mapUploadError(err))
		return
	}

	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   result,
	})
}

// stopwordRequest is the POST /api/stopwords payload.
type stopwordRequest struct {
	Words string `json:"words" validate:"required"`
}

// GetStopwords handles GET /api/stopwords.
func (h *DataHandler) GetStopwords(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	words, err := h.service.Stopwords(sessionID)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	renderStopwords(w, r, words)
}

// AddStopwords handles POST /api/stopwords.
func (h *DataHandler) AddStopwords(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	var req stopwordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("words", "Words field is required"))
		return
	}
	words, err := h.service.AddStopwords(sessionID, req.Words)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	renderStopwords(w, r, words)
}

// RemoveStopword handles DELETE /api/stopwords/{word}.
func (h *DataHandler) RemoveStopword(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	word := chi.URLParam(r, "word")
	if word == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("word", "Word is required"))
		return
	}
	words, err := h.service.RemoveStopword(sessionID, word)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	renderStopwords(w, r, words)
}

// ResetStopwords handles POST /api/stopwords/reset.
func (h *DataHandler) ResetStopwords(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r, h.errorHandler)
	if !ok {
		return
	}
	words, err := h.service.ResetStopwords(sessionID)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapServiceError(err))
		return
	}
	renderStopwords(w, r, words)
}

func renderStopwords(w http.ResponseWriter, r *http.Request, words []string) {
	render.JSON(w, r, map[string]any{
		"status": "success",
		"data":   words,
		"count":  len(words),
	})
}

// requireSession extracts the X-Session-ID header or renders 401.
func requireSession(w http.ResponseWriter, r *http.Request, eh *apierrors.Handler) (string, bool) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		eh.HandleError(w, r, apierrors.ErrSessionRequired)
		return "", false
	}
	return id, true
}

// mapServiceError translates service sentinels into API errors.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return apierrors.ErrSessionNotFound
	case errors.Is(err, services.ErrNoReviewData),
		errors.Is(err, services.ErrNoOptionData),
		errors.Is(err, services.ErrNoSalesData):
		return apierrors.ErrNoData
	default:
		return err
	}
}

func mapUploadError(err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownKind):
		return apierrors.ErrValidation("kind", "Unknown table kind; use reviews, options, sales or auto")
	case errors.Is(err, services.ErrSessionNotFound):
		return apierrors.ErrSessionNotFound
	default:
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apierrors.New(http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "Uploaded file exceeds the size limit")
		}
		return apierrors.InvalidRequestWithError(err)
	}
}
