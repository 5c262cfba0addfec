// Package ledger parses generic ledger CSV exports into transaction params.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/sungheeyun-bit/tracker/internal/encoding"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

const (
	colDate        = "date"
	colType        = "type"
	colCategory    = "category"
	colAmount      = "amount"
	colDescription = "description"
)

type Importer struct{}

func New() *Importer {
	return &Importer{}
}

// Parse reads a ledger CSV and returns validated transaction params. The
// header row names the columns (case-insensitive, any order); description is
// optional. Every row passes through the same validation gate as the API.
func (imp *Importer) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var params []transaction.CreateParams

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		if blankRow(row) {
			continue
		}

		in := transaction.CreateInput{
			Amount:      transaction.Number(cellValue(row, cols[colAmount])),
			Date:        cellValue(row, cols[colDate]),
			Category:    cellValue(row, cols[colCategory]),
			Type:        transaction.Type(strings.ToLower(cellValue(row, cols[colType]))),
			Description: cellValue(row, cols[colDescription]),
		}

		p, err := transaction.ValidateCreate(in)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		params = append(params, p)
	}

	return params, nil
}

// mapColumns resolves header names to indices. Description is optional; the
// rest are required.
func mapColumns(header []string) (map[string]int, error) {
	cols := map[string]int{colDescription: -1}

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for _, required := range []string{colDate, colType, colCategory, colAmount} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing %q column in header", required)
		}
	}

	return cols, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
