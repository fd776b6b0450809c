// Package sales derives performance metrics from a per-product sales table
// with period-keyed revenue columns: rankings, price efficiency, dynamic
// price segmentation, review/sales correlation, cross-insight listings and
// summary statistics.
//
// Every operation excludes synthetic grand-total rows before computing
// anything, filters to rows that actually carry the required values, and
// returns an explicitly empty result when required columns are absent or the
// filtered set is too small. Nothing in this package panics or returns an
// error on degenerate input.
package sales
