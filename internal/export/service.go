// Package export renders a user's transactions as a CSV download.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/settings"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

var header = []string{"date", "type", "category", "amount", "description"}

// Service handles the export of transactions.
type Service struct {
	transactions *transaction.Service
	settings     *settings.Service
}

func NewService(txService *transaction.Service, settingsService *settings.Service) *Service {
	return &Service{
		transactions: txService,
		settings:     settingsService,
	}
}

// Export writes transactions matching the filter to w as CSV, one row per
// transaction in date order. Amounts are rendered in the user's configured
// currency.
func (s *Service) Export(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter, w io.Writer) error {
	formatter, err := s.settings.FormatterFor(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolving currency: %w", err)
	}

	txs, err := s.transactions.List(ctx, userID, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		row := []string{
			tx.Date.Format("2006-01-02"),
			string(tx.Type),
			tx.Category,
			formatter.Format(tx.Amount),
			tx.Description,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
