// Package services sits between transport and the analytics core: it
// resolves sessions, recomputes analyses from the stored tables on every
// call, and translates degenerate states into sentinel errors.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"storelens/internal/dataset"
	"storelens/internal/options"
	"storelens/internal/reviews"
	"storelens/internal/sales"
	"storelens/internal/session"
	"storelens/internal/textkit"
)

// Sentinel errors mapped to API errors by the transport layer.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoReviewData    = errors.New("no review data uploaded")
	ErrNoOptionData    = errors.New("no option data uploaded")
	ErrNoSalesData     = errors.New("no sales data uploaded")
	ErrUnknownKind     = errors.New("unknown table kind")
)

// AnalyticsService owns the analytics configuration and recomputes every
// analysis from the session's raw tables. Nothing derived is cached; only
// uploads and stopword edits persist within a session.
type AnalyticsService struct {
	store      *session.Store
	seg        *textkit.Segmenter
	classifier *reviews.Classifier
	categories reviews.CategoryTable
	matcher    reviews.Matcher
	topWords   int
	topOptions int
	logger     *slog.Logger
}

// NewAnalyticsService wires the analytics core with its configuration.
func NewAnalyticsService(store *session.Store, categories reviews.CategoryTable, topWords, topOptions int, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	seg := textkit.NewSegmenter()
	return &AnalyticsService{
		store:      store,
		seg:        seg,
		classifier: reviews.NewClassifier(seg, nil, nil),
		categories: categories,
		matcher:    reviews.SubstringMatcher{},
		topWords:   topWords,
		topOptions: topOptions,
		logger:     logger.With(slog.String("component", "analytics_service")),
	}
}

// EnableEnglishFallback turns on VADER scoring for Hangul-free review text.
// Off by default, so such reviews score 0 and classify neutral.
func (s *AnalyticsService) EnableEnglishFallback() {
	s.classifier.WithEnglishFallback()
}

// CreateSession registers a new session.
func (s *AnalyticsService) CreateSession(ctx context.Context) *session.Session {
	sess := s.store.Create()
	s.logger.InfoContext(ctx, "session created", slog.String("session_id", sess.ID))
	return sess
}

// DeleteSession discards a session and its uploaded tables. Deleting an
// unknown session is a no-op.
func (s *AnalyticsService) DeleteSession(sessionID string) {
	s.store.Delete(sessionID)
}

// UploadResult describes an accepted upload.
type UploadResult struct {
	Kind dataset.Kind `json:"kind"`
	Rows int          `json:"rows"`
}

// UploadTable loads a spreadsheet export, canonicalizes its schema and
// stores it in the session. kind "auto" (or "") detects the export kind
// from the column set.
func (s *AnalyticsService) UploadTable(ctx context.Context, sessionID, kind string, r io.Reader, filename string) (UploadResult, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return UploadResult{}, ErrSessionNotFound
	}

	raw, err := dataset.Load(r, filename)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to load %s: %w", filename, err)
	}

	var k dataset.Kind
	if kind == "" || kind == "auto" {
		detected, ok := dataset.DetectKind(raw)
		if !ok {
			return UploadResult{}, ErrUnknownKind
		}
		k = detected
	} else {
		parsed, ok := dataset.ParseKind(kind)
		if !ok {
			return UploadResult{}, ErrUnknownKind
		}
		k = parsed
	}

	table := dataset.Canonicalize(raw, k)
	sess.SetTable(k, table)
	s.logger.InfoContext(ctx, "table uploaded",
		slog.String("session_id", sessionID),
		slog.String("kind", string(k)),
		slog.String("filename", filename),
		slog.Int("rows", table.Len()),
	)
	return UploadResult{Kind: k, Rows: table.Len()}, nil
}

// FrequencyResult holds the full frequency table and its top slice.
type FrequencyResult struct {
	Words []reviews.WordFrequency `json:"words"`
	Top   []reviews.WordFrequency `json:"top"`
}

// ReviewFrequency builds the word-frequency analysis for the session's
// review table.
func (s *AnalyticsService) ReviewFrequency(ctx context.Context, sessionID string) (FrequencyResult, error) {
	sess, table, err := s.reviewTable(sessionID)
	if err != nil {
		return FrequencyResult{}, err
	}
	freqs := reviews.Frequencies(table, dataset.ColText, s.seg, sess.Stopwords)
	return FrequencyResult{Words: freqs, Top: reviews.TopWords(freqs, s.topWords)}, nil
}

// SentimentResult holds the classified rows and the per-label tally.
type SentimentResult struct {
	Counts  []reviews.LabelCount `json:"counts"`
	Reviews []dataset.Record     `json:"reviews"`
}

// ReviewSentiment classifies the session's review table.
func (s *AnalyticsService) ReviewSentiment(ctx context.Context, sessionID string) (SentimentResult, error) {
	_, table, err := s.reviewTable(sessionID)
	if err != nil {
		return SentimentResult{}, err
	}
	classified, counts := s.classifier.Classify(table, dataset.ColText)
	return SentimentResult{Counts: counts, Reviews: classified.Rows}, nil
}

// ReviewCategories breaks one sentiment bucket of the session's reviews
// down by category.
func (s *AnalyticsService) ReviewCategories(ctx context.Context, sessionID string, label reviews.Label) ([]reviews.CategoryResult, error) {
	_, table, err := s.reviewTable(sessionID)
	if err != nil {
		return nil, err
	}
	classified, _ := s.classifier.Classify(table, dataset.ColText)
	return reviews.AnalyzeCategories(classified, dataset.ColText, label, s.categories.ForLabel(label), s.matcher), nil
}

// TopOptions ranks the session's option table by sale count.
func (s *AnalyticsService) TopOptions(ctx context.Context, sessionID string) ([]options.RankedOption, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	table, ok := sess.Table(dataset.KindOptions)
	if !ok {
		return nil, ErrNoOptionData
	}
	return options.TopOptions(table, dataset.ColOptionLabel, dataset.ColCount, s.topOptions), nil
}

// SalesPeriods returns the periods available in the session's sales table.
func (s *AnalyticsService) SalesPeriods(ctx context.Context, sessionID string) ([]dataset.Period, error) {
	table, err := s.salesTable(sessionID)
	if err != nil {
		return nil, err
	}
	return dataset.AvailablePeriods(table), nil
}

// SalesSummary computes the revenue summary statistics for a period.
func (s *AnalyticsService) SalesSummary(ctx context.Context, sessionID string, p dataset.Period) (sales.SummaryStats, bool, error) {
	table, err := s.salesTable(sessionID)
	if err != nil {
		return sales.SummaryStats{}, false, err
	}
	stats, ok := sales.Summary(table, p)
	return stats, ok, nil
}

// SalesTop ranks products by revenue for a period.
func (s *AnalyticsService) SalesTop(ctx context.Context, sessionID string, p dataset.Period, n int) ([]sales.RankedProduct, error) {
	table, err := s.salesTable(sessionID)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = sales.DefaultTopN
	}
	return sales.TopProducts(table, p, n), nil
}

// SalesEfficiency ranks products by revenue-to-price ratio for a period.
func (s *AnalyticsService) SalesEfficiency(ctx context.Context, sessionID string, p dataset.Period) ([]sales.EfficiencyEntry, error) {
	table, err := s.salesTable(sessionID)
	if err != nil {
		return nil, err
	}
	return sales.PriceEfficiency(table, p), nil
}

// SalesSegments buckets products into dynamic price bands for a period.
func (s *AnalyticsService) SalesSegments(ctx context.Context, sessionID string, p dataset.Period) ([]sales.PriceSegment, error) {
	table, err := s.salesTable(sessionID)
	if err != nil {
		return nil, err
	}
	return sales.PriceSegments(table, p), nil
}

// SalesCorrelation computes the review/sales correlation for a period.
func (s *AnalyticsService) SalesCorrelation(ctx context.Context, sessionID string, p dataset.Period) (sales.CorrelationResult, error) {
	table, err := s.salesTable(sessionID)
	if err != nil {
		return sales.CorrelationResult{}, err
	}
	return sales.ReviewSalesCorrelation(table, p), nil
}

// Insight identifies one of the cross-insight listings.
type Insight string

// Cross-insight listing identifiers.
const (
	InsightReviewEfficiency Insight = "review-efficiency"
	InsightHiddenGems       Insight = "hidden-gems"
	InsightUnderperforming  Insight = "underperforming"
	InsightReviewNeeded     Insight = "review-needed"
	InsightValueForMoney    Insight = "value-for-money"
)

// ParseInsight resolves a request parameter to an Insight.
func ParseInsight(s string) (Insight, bool) {
	switch Insight(s) {
	case InsightReviewEfficiency, InsightHiddenGems, InsightUnderperforming,
		InsightReviewNeeded, InsightValueForMoney:
		return Insight(s), true
	}
	return "", false
}

// SalesInsight computes one cross-insight listing for a period. The result
// is always a slice value suitable for JSON rendering.
func (s *AnalyticsService) SalesInsight(ctx context.Context, sessionID string, insight Insight, p dataset.Period) (any, error) {
	table, err := s.salesTable(sessionID)
	if err != nil {
		return nil, err
	}
	switch insight {
	case InsightReviewEfficiency:
		return sales.ReviewEfficiency(table, p), nil
	case InsightHiddenGems:
		return sales.HiddenGems(table, p), nil
	case InsightUnderperforming:
		return sales.Underperforming(table, p), nil
	case InsightReviewNeeded:
		return sales.ReviewNeeded(table, p), nil
	case InsightValueForMoney:
		return sales.ValueForMoney(table, p), nil
	default:
		return nil, fmt.Errorf("unknown insight: %s", insight)
	}
}

// Stopwords returns the session's current stopword list.
func (s *AnalyticsService) Stopwords(sessionID string) ([]string, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Stopwords.Words(), nil
}

// AddStopwords adds whitespace-separated words to the session's set.
func (s *AnalyticsService) AddStopwords(sessionID, input string) ([]string, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.Stopwords.Add(input)
	return sess.Stopwords.Words(), nil
}

// RemoveStopword removes one word from the session's set.
func (s *AnalyticsService) RemoveStopword(sessionID, word string) ([]string, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.Stopwords.Remove(word)
	return sess.Stopwords.Words(), nil
}

// ResetStopwords restores the session's default stopword list.
func (s *AnalyticsService) ResetStopwords(sessionID string) ([]string, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.Stopwords.Reset()
	return sess.Stopwords.Words(), nil
}

func (s *AnalyticsService) reviewTable(sessionID string) (*session.Session, dataset.Table, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return nil, dataset.Table{}, ErrSessionNotFound
	}
	table, ok := sess.Table(dataset.KindReviews)
	if !ok {
		return nil, dataset.Table{}, ErrNoReviewData
	}
	return sess, table, nil
}

func (s *AnalyticsService) salesTable(sessionID string) (dataset.Table, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return dataset.Table{}, ErrSessionNotFound
	}
	table, ok := sess.Table(dataset.KindSales)
	if !ok {
		return dataset.Table{}, ErrNoSalesData
	}
	return table, nil
}
