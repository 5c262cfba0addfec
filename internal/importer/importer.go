package importer

import (
	"io"

	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

// Format identifies a supported import file layout.
type Format string

const (
	// FormatLedger is the generic comma-separated ledger export:
	// date, type, category, amount and an optional description per row.
	FormatLedger Format = "ledger"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
