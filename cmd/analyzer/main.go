// Command analyzer runs the full analytics pipeline over local export files
// and writes the derived tables as CSV reports.
//
// Usage:
//
//	analyzer -reviews reviews.xlsx -options options.xlsx -sales sales.xlsx -period 1m -out reports
//
// Any subset of the three exports may be given; analyses whose input is
// missing are skipped.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"storelens/internal/dataset"
	"storelens/internal/exporter"
	"storelens/internal/options"
	"storelens/internal/reviews"
	"storelens/internal/sales"
	"storelens/internal/textkit"
)

func main() {
	var (
		reviewsPath = flag.String("reviews", "", "path to the review export (.xlsx or .csv)")
		optionsPath = flag.String("options", "", "path to the option sales export (.xlsx or .csv)")
		salesPath   = flag.String("sales", "", "path to the sales-by-period export (.xlsx or .csv)")
		periodArg   = flag.String("period", "1m", "sales period: 7d, 1m, 3m, 6m, 1y, 2y")
		outDir      = flag.String("out", "reports", "output directory for CSV reports")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *reviewsPath == "" && *optionsPath == "" && *salesPath == "" {
		fmt.Fprintln(os.Stderr, "at least one of -reviews, -options or -sales is required")
		flag.Usage()
		os.Exit(2)
	}

	period, ok := dataset.ParsePeriod(*periodArg)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid period %q\n", *periodArg)
		os.Exit(2)
	}

	tables, err := loadTables(*reviewsPath, *optionsPath, *salesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load exports: %v\n", err)
		os.Exit(1)
	}

	writer := exporter.NewCSVWriter(*outDir, logger)
	if err := run(tables, period, writer, logger); err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}
}

// loadTables reads the given exports concurrently and canonicalizes their
// schemas.
func loadTables(reviewsPath, optionsPath, salesPath string) (map[dataset.Kind]dataset.Table, error) {
	var (
		mu     sync.Mutex
		tables = make(map[dataset.Kind]dataset.Table)
	)
	load := func(path string, kind dataset.Kind) func() error {
		return func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()
			raw, err := dataset.Load(f, path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			t := dataset.Canonicalize(raw, kind)
			mu.Lock()
			tables[kind] = t
			mu.Unlock()
			return nil
		}
	}

	var g errgroup.Group
	if reviewsPath != "" {
		g.Go(load(reviewsPath, dataset.KindReviews))
	}
	if optionsPath != "" {
		g.Go(load(optionsPath, dataset.KindOptions))
	}
	if salesPath != "" {
		g.Go(load(salesPath, dataset.KindSales))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

func run(tables map[dataset.Kind]dataset.Table, period dataset.Period, writer *exporter.CSVWriter, logger *slog.Logger) error {
	if t, ok := tables[dataset.KindReviews]; ok {
		if err := runReviews(t, writer); err != nil {
			return err
		}
	}
	if t, ok := tables[dataset.KindOptions]; ok {
		ranked := options.TopOptions(t, dataset.ColOptionLabel, dataset.ColCount, options.DefaultTopN)
		headers, records := exporter.OptionReport(ranked)
		if err := writer.WriteSimpleCSV("top_options.csv", headers, records); err != nil {
			return err
		}
	}
	if t, ok := tables[dataset.KindSales]; ok {
		if err := runSales(t, period, writer, logger); err != nil {
			return err
		}
	}
	return nil
}

func runReviews(t dataset.Table, writer *exporter.CSVWriter) error {
	seg := textkit.NewSegmenter()
	stops := textkit.NewStopwordSet()

	freqs := reviews.Frequencies(t, dataset.ColText, seg, stops)
	headers, records := exporter.FrequencyReport(reviews.TopWords(freqs, 20))
	if err := writer.WriteSimpleCSV("word_frequency.csv", headers, records); err != nil {
		return err
	}

	classifier := reviews.NewClassifier(seg, nil, nil)
	classified, counts := classifier.Classify(t, dataset.ColText)
	headers, records = exporter.SentimentReport(counts)
	if err := writer.WriteSimpleCSV("sentiment.csv", headers, records); err != nil {
		return err
	}

	table := reviews.DefaultCategoryTable()
	for _, label := range []reviews.Label{reviews.Positive, reviews.Neutral, reviews.Negative} {
		results := reviews.AnalyzeCategories(classified, dataset.ColText, label,
			table.ForLabel(label), reviews.SubstringMatcher{})
		headers, records = exporter.CategoryReport(results)
		name := fmt.Sprintf("categories_%s.csv", label)
		if err := writer.WriteSimpleCSV(name, headers, records); err != nil {
			return err
		}
	}
	return nil
}

func runSales(t dataset.Table, period dataset.Period, writer *exporter.CSVWriter, logger *slog.Logger) error {
	available := dataset.AvailablePeriods(t)
	if len(available) == 0 {
		logger.Warn("sales export has no recognizable period columns")
		return nil
	}
	found := false
	for _, p := range available {
		if p == period {
			found = true
			break
		}
	}
	if !found {
		logger.Warn("requested period not present, using first available",
			slog.String("requested", period.String()),
			slog.String("using", available[0].String()),
		)
		period = available[0]
	}

	var stats []sales.SummaryStats
	for _, p := range available {
		if s, ok := sales.Summary(t, p); ok {
			stats = append(stats, s)
		}
	}
	headers, records := exporter.SummaryReport(stats)
	if err := writer.WriteSimpleCSV("sales_summary.csv", headers, records); err != nil {
		return err
	}

	headers, records = exporter.TopProductReport(sales.TopProducts(t, period, sales.DefaultTopN))
	if err := writer.WriteSimpleCSV("top_products.csv", headers, records); err != nil {
		return err
	}

	headers, records = exporter.SegmentReport(sales.PriceSegments(t, period))
	return writer.WriteSimpleCSV("price_segments.csv", headers, records)
}
