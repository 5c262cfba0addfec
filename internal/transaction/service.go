package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/dateutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
}

// CategoryLookup resolves the icon for a user's category at the write
// boundary. A missing category surfaces the category package's not-found
// error unchanged.
type CategoryLookup interface {
	Icon(ctx context.Context, userID uuid.UUID, name string, typ Type) (string, error)
}

type ListFilter struct {
	From *time.Time
	To   *time.Time
	Type *Type
}

type Service struct {
	repo       Repository
	categories CategoryLookup
}

func NewService(repo Repository, categories CategoryLookup) *Service {
	return &Service{repo: repo, categories: categories}
}

// Create validates the raw input, snapshots the category icon and persists
// the transaction.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*Transaction, error) {
	params, err := ValidateCreate(in)
	if err != nil {
		return nil, err
	}

	icon, err := s.categories.Icon(ctx, userID, params.Category, params.Type)
	if err != nil {
		return nil, err
	}

	tx := &Transaction{
		UserID:       userID,
		Amount:       params.Amount,
		Description:  params.Description,
		Date:         params.Date,
		Type:         params.Type,
		Category:     params.Category,
		CategoryIcon: icon,
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	return tx, nil
}

// CreateBatch persists already-validated params, resolving each distinct
// (category, type) icon once. Used by the CSV importer.
func (s *Service) CreateBatch(ctx context.Context, userID uuid.UUID, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	type catKey struct {
		Name string
		Type Type
	}

	icons := make(map[catKey]string)

	for _, p := range params {
		k := catKey{Name: p.Category, Type: p.Type}
		if _, ok := icons[k]; ok {
			continue
		}

		icon, err := s.categories.Icon(ctx, userID, p.Category, p.Type)
		if err != nil {
			return nil, err
		}

		icons[k] = icon
	}

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			UserID:       userID,
			Amount:       p.Amount,
			Description:  p.Description,
			Date:         p.Date,
			Type:         p.Type,
			Category:     p.Category,
			CategoryIcon: icons[catKey{Name: p.Category, Type: p.Type}],
		}
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("creating transactions: %w", err)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	if filter.From != nil {
		from := dateutil.ToUTCDate(*filter.From)
		filter.From = &from
	}

	if filter.To != nil {
		to := dateutil.ToUTCDate(*filter.To)
		filter.To = &to
	}

	return s.repo.ListTransactions(ctx, userID, filter)
}

// Update re-checks the amount/type invariants and refreshes the category
// icon snapshot before persisting.
func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	if tx.Amount <= 0 {
		return ErrInvalidAmount
	}

	if !tx.Type.Valid() {
		return ErrInvalidType
	}

	icon, err := s.categories.Icon(ctx, tx.UserID, tx.Category, tx.Type)
	if err != nil {
		return err
	}

	tx.CategoryIcon = icon
	tx.Date = dateutil.ToUTCDate(tx.Date)

	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}
