package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

type transactionResponse struct {
	ID           uuid.UUID        `json:"id"`
	Amount       int64            `json:"amount"`
	Type         transaction.Type `json:"type"`
	Description  string           `json:"description"`
	Date         time.Time        `json:"date"`
	Category     string           `json:"category"`
	CategoryIcon string           `json:"categoryIcon"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Amount:       tx.Amount,
		Type:         tx.Type,
		Description:  tx.Description,
		Date:         tx.Date,
		Category:     tx.Category,
		CategoryIcon: tx.CategoryIcon,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
