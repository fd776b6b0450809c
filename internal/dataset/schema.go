package dataset

import "strings"

// Kind identifies which storefront export a table was produced from.
type Kind string

const (
	// KindReviews is the product review export.
	KindReviews Kind = "reviews"
	// KindOptions is the per-option sales export.
	KindOptions Kind = "options"
	// KindSales is the per-product sales-by-period export.
	KindSales Kind = "sales"
)

// ParseKind resolves a request parameter to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindReviews:
		return KindReviews, true
	case KindOptions:
		return KindOptions, true
	case KindSales:
		return KindSales, true
	}
	return "", false
}

// Canonical column names. All analytics operate on these; source-specific
// header variants are resolved exactly once at ingestion.
const (
	ColText        = "text"
	ColOptionLabel = "option_label"
	ColCount       = "count"
	ColProductName = "product_name"
	ColBasePrice   = "base_price"
	ColReviewScore = "review_score"
	ColReviewCount = "review_count"
	ColSaleCount   = "sale_count"
)

// Candidate source headers per canonical column. Order is priority order:
// the first candidate present in the source wins.
var (
	textCandidates        = []string{"review_content", "리뷰내용", "리뷰 내용", "리뷰", "내용", "text", "review"}
	optionLabelCandidates = []string{"option_info", "옵션정보", "옵션명", "옵션", "option_label", "option"}
	countCandidates       = []string{"COUNT", "count", "수량", "판매량", "판매수량"}
	saleCountCandidates   = []string{"판매건수", "판매수량", "수량", "판매량"}
)

// Canonicalize renames the table's columns to the canonical schema for the
// given kind. Columns with no canonical mapping are kept under their source
// name. The input table is not modified.
func Canonicalize(t Table, kind Kind) Table {
	mapping := make(map[string]string, len(t.Columns))
	switch kind {
	case KindReviews:
		if src, ok := firstPresent(t, textCandidates); ok {
			mapping[src] = ColText
		}
	case KindOptions:
		if src, ok := firstPresent(t, optionLabelCandidates); ok {
			mapping[src] = ColOptionLabel
		}
		if src, ok := firstPresent(t, countCandidates); ok {
			mapping[src] = ColCount
		}
	case KindSales:
		mapSalesColumns(t, mapping)
	}

	out := Table{Columns: make([]string, len(t.Columns)), Rows: make([]Record, 0, len(t.Rows))}
	for i, col := range t.Columns {
		if canon, ok := mapping[col]; ok {
			out.Columns[i] = canon
		} else {
			out.Columns[i] = col
		}
	}
	for _, row := range t.Rows {
		dst := make(Record, len(row))
		for col, v := range row {
			if canon, ok := mapping[col]; ok {
				dst[canon] = v
			} else {
				dst[col] = v
			}
		}
		out.Rows = append(out.Rows, dst)
	}
	return out
}

func mapSalesColumns(t Table, mapping map[string]string) {
	for _, col := range t.Columns {
		switch {
		case col == "상품명":
			mapping[col] = ColProductName
		case col == "기본판매가격":
			mapping[col] = ColBasePrice
		case col == "리뷰점수":
			mapping[col] = ColReviewScore
		case col == "리뷰수":
			mapping[col] = ColReviewCount
		}
		for _, p := range Periods() {
			if strings.TrimSpace(col) == p.Label()+" 매출" {
				mapping[col] = p.Column()
			}
		}
	}
	// Sale count resolves through a priority list; review_count candidates
	// must not shadow it, so it is assigned after the fixed names above.
	for _, cand := range saleCountCandidates {
		if t.HasColumn(cand) {
			if _, taken := mapping[cand]; !taken {
				mapping[cand] = ColSaleCount
				break
			}
		}
	}
}

func firstPresent(t Table, candidates []string) (string, bool) {
	for _, c := range candidates {
		if t.HasColumn(c) {
			return c, true
		}
	}
	return "", false
}

// DetectKind guesses the export kind from the source column set. Used when
// an upload does not state its kind explicitly.
func DetectKind(t Table) (Kind, bool) {
	if _, ok := firstPresent(t, textCandidates); ok {
		return KindReviews, true
	}
	if t.HasColumn("상품명") {
		for _, col := range t.Columns {
			if strings.Contains(col, "매출") {
				return KindSales, true
			}
		}
	}
	_, hasLabel := firstPresent(t, optionLabelCandidates)
	_, hasCount := firstPresent(t, countCandidates)
	if hasLabel && hasCount {
		return KindOptions, true
	}
	return "", false
}
