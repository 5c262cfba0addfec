package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settings
type Repository interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*Settings, error)
	UpsertSettings(ctx context.Context, s *Settings) error
}

type Service struct {
	repo       Repository
	currencies *money.Cache
}

func NewService(repo Repository, currencies *money.Cache) *Service {
	return &Service{repo: repo, currencies: currencies}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Settings, error) {
	return s.repo.GetSettings(ctx, userID)
}

// Update sets the user's currency, creating the settings row on first use
// (onboarding). The code is validated before anything is written.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, currency string) (*Settings, error) {
	if _, err := s.currencies.FormatterFor(currency); err != nil {
		return nil, err
	}

	st := &Settings{UserID: userID, Currency: currency}
	if err := s.repo.UpsertSettings(ctx, st); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}

	return st, nil
}

// FormatterFor returns the memoized formatter for the user's configured
// currency.
func (s *Service) FormatterFor(ctx context.Context, userID uuid.UUID) (*money.Formatter, error) {
	st, err := s.repo.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.currencies.FormatterFor(st.Currency)
}
