package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads a spreadsheet export from r and returns its raw table. The
// format is chosen by the filename extension (.xlsx/.xlsm or .csv).
func Load(r io.Reader, filename string) (Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return LoadExcel(r)
	case ".csv":
		return LoadCSV(r)
	default:
		return Table{}, fmt.Errorf("unsupported file type: %s", filename)
	}
}

// LoadExcel reads the first sheet that contains a header row plus at least
// one data row. Storefront exports occasionally carry empty cover sheets.
func LoadExcel(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		return fromRows(rows), nil
	}
	return Table{}, fmt.Errorf("no sheet with tabular data found")
}

// LoadCSV reads a comma-separated export with a header row.
func LoadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) < 2 {
		return Table{}, fmt.Errorf("csv has no data rows")
	}
	return fromRows(rows), nil
}

func fromRows(rows [][]string) Table {
	headers := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		h = strings.TrimSpace(h)
		// Strip a UTF-8 BOM left by Excel CSV exports.
		h = strings.TrimPrefix(h, "\uFEFF")
		headers = append(headers, h)
	}

	t := Table{Columns: headers}
	for _, row := range rows[1:] {
		if !rowHasData(row) {
			continue
		}
		rec := make(Record, len(headers))
		for i, col := range headers {
			if col == "" || i >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				continue
			}
			rec[col] = parseCell(cell)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}

// parseCell stores numeric-looking cells as float64 so downstream metrics
// never re-parse, and everything else as the raw string.
func parseCell(cell string) any {
	cleaned := strings.ReplaceAll(cell, ",", "")
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return f
	}
	return cell
}

func rowHasData(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
