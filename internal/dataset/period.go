package dataset

// Period represents one of the fixed revenue aggregation windows present in
// storefront sales exports.
type Period int

const (
	// Period7D is the trailing 7-day window.
	Period7D Period = iota
	// Period1M is the trailing 1-month window.
	Period1M
	// Period3M is the trailing 3-month window.
	Period3M
	// Period6M is the trailing 6-month window.
	Period6M
	// Period1Y is the trailing 1-year window.
	Period1Y
	// Period2Y is the trailing 2-year window.
	Period2Y
)

// Periods returns the full period vocabulary in canonical order.
func Periods() []Period {
	return []Period{Period7D, Period1M, Period3M, Period6M, Period1Y, Period2Y}
}

// String returns the short identifier used in API requests and responses.
func (p Period) String() string {
	switch p {
	case Period7D:
		return "7d"
	case Period1M:
		return "1m"
	case Period3M:
		return "3m"
	case Period6M:
		return "6m"
	case Period1Y:
		return "1y"
	case Period2Y:
		return "2y"
	default:
		return "unknown"
	}
}

// Label returns the period name as it appears in source export headers.
func (p Period) Label() string {
	switch p {
	case Period7D:
		return "7일"
	case Period1M:
		return "1개월"
	case Period3M:
		return "3개월"
	case Period6M:
		return "6개월"
	case Period1Y:
		return "1년"
	case Period2Y:
		return "2년"
	default:
		return "unknown"
	}
}

// Column returns the canonical revenue column name for the period.
func (p Period) Column() string {
	return "sales_" + p.String()
}

// ParsePeriod resolves a short identifier or source label to a Period.
func ParsePeriod(s string) (Period, bool) {
	for _, p := range Periods() {
		if s == p.String() || s == p.Label() {
			return p, true
		}
	}
	return 0, false
}

// AvailablePeriods returns the subset of the period vocabulary present as
// columns in the table, preserving vocabulary order rather than column order.
func AvailablePeriods(t Table) []Period {
	var out []Period
	for _, p := range Periods() {
		if t.HasColumn(p.Column()) {
			out = append(out, p)
		}
	}
	return out
}
