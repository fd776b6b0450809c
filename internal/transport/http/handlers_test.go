package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "storelens/internal/errors"
	"storelens/internal/reviews"
	"storelens/internal/services"
	"storelens/internal/session"
)

const salesCSV = "상품명,1개월 매출,기본판매가격,리뷰점수,리뷰수\n김치,1000,100,4.8,3\n라면,500,50,4.0,20\n"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := session.NewStore(time.Hour, logger)
	service := services.NewAnalyticsService(store, reviews.DefaultCategoryTable(), 20, 10, logger)
	errorHandler := apierrors.NewHandler(logger)

	dataHandler := NewDataHandler(service, 1<<20, logger, errorHandler)
	reviewsHandler := NewReviewsHandler(service, logger, errorHandler)
	optionsHandler := NewOptionsHandler(service, logger, errorHandler)
	salesHandler := NewSalesHandler(service, logger, errorHandler)

	r := chi.NewRouter()
	r.Mount("/healthz", NewHealthHandler("test").Routes())
	r.Route("/api", func(r chi.Router) {
		r.Mount("/sessions", dataHandler.SessionRoutes())
		r.Mount("/data", dataHandler.DataRoutes())
		r.Mount("/stopwords", dataHandler.StopwordRoutes())
		r.Mount("/reviews", reviewsHandler.Routes())
		r.Mount("/options", optionsHandler.Routes())
		r.Mount("/sales", salesHandler.Routes())
	})
	return r
}

func createSession(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.SessionID)
	return body.SessionID
}

func uploadCSV(t *testing.T, router http.Handler, sessionID, kind, csv string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "export.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/data/"+kind, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(sessionHeader, sessionID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestAnalysisRequiresSessionHeader(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/reviews/frequency",
		"/api/options/top",
		"/api/sales/periods",
		"/api/stopwords",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "SESSION_REQUIRED", path)
	}
}

func TestUnknownSessionReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/periods", nil)
	req.Header.Set(sessionHeader, "nope")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_NOT_FOUND")
}

func TestAnalysisWithoutUploadReturnsNoData(t *testing.T) {
	router := newTestRouter(t)
	sessionID := createSession(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/sentiment", nil)
	req.Header.Set(sessionHeader, sessionID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_DATA")
}

func TestSalesFlow(t *testing.T) {
	router := newTestRouter(t)
	sessionID := createSession(t, router)
	uploadCSV(t, router, sessionID, "sales", salesCSV)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(sessionHeader, sessionID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := get("/api/sales/periods")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"1m"`)

	rec = get("/api/sales/summary?period=1m")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1500`)

	rec = get("/api/sales/top?period=1m")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "김치")

	rec = get("/api/sales/insights/hidden-gems?period=1m")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Validation failures.
	rec = get("/api/sales/summary")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get("/api/sales/summary?period=5m")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get("/api/sales/insights/profit?period=1m")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get("/api/sales/top?period=1m&limit=zero")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewFlow(t *testing.T) {
	router := newTestRouter(t)
	sessionID := createSession(t, router)
	uploadCSV(t, router, sessionID, "reviews", "리뷰내용\n배송이 빨라요 좋아요\n맛없어요 별로예요\n")

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/sentiment", nil)
	req.Header.Set(sessionHeader, sessionID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"positive"`)
	assert.Contains(t, rec.Body.String(), `"negative"`)

	req = httptest.NewRequest(http.MethodGet, "/api/reviews/categories?sentiment=negative", nil)
	req.Header.Set(sessionHeader, sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/reviews/categories?sentiment=great", nil)
	req.Header.Set(sessionHeader, sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStopwordEndpoints(t *testing.T) {
	router := newTestRouter(t)
	sessionID := createSession(t, router)

	do := func(method, path string, body io.Reader) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, body)
		req.Header.Set(sessionHeader, sessionID)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/api/stopwords", strings.NewReader(`{"words":"테스트"}`))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "테스트")

	rec = do(http.MethodDelete, "/api/stopwords/테스트", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "테스트")

	rec = do(http.MethodPost, "/api/stopwords/reset", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Empty payload fails validation.
	rec = do(http.MethodPost, "/api/stopwords", strings.NewReader(`{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadValidation(t *testing.T) {
	router := newTestRouter(t)
	sessionID := createSession(t, router)

	// Unknown kind.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "export.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(salesCSV))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/data/everything", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(sessionHeader, sessionID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing file field.
	var empty bytes.Buffer
	mw = multipart.NewWriter(&empty)
	require.NoError(t, mw.Close())
	req = httptest.NewRequest(http.MethodPost, "/api/data/sales", &empty)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(sessionHeader, sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSession(t *testing.T) {
	router := newTestRouter(t)
	sessionID := createSession(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sessionID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/periods", nil)
	req.Header.Set(sessionHeader, sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
