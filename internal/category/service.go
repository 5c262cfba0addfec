package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sungheeyun-bit/tracker/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, userID uuid.UUID, name string, typ transaction.Type) (*Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID, typ *transaction.Type) ([]*Category, error)
	DeleteCategory(ctx context.Context, userID uuid.UUID, name string, typ transaction.Type) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name string
	Type transaction.Type
	Icon string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Category, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, transaction.ErrMissingCategory
	}

	if !params.Type.Valid() {
		return nil, transaction.ErrInvalidType
	}

	c := &Category{
		UserID: userID,
		Name:   name,
		Type:   params.Type,
		Icon:   params.Icon,
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, typ *transaction.Type) ([]*Category, error) {
	return s.repo.ListCategories(ctx, userID, typ)
}

// Delete removes the category. Existing transactions keep their snapshotted
// name and icon; nothing cascades.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID, name string, typ transaction.Type) error {
	return s.repo.DeleteCategory(ctx, userID, name, typ)
}

// Icon implements the transaction write boundary's referential check,
// returning ErrNotFound when the category does not exist for the user.
func (s *Service) Icon(ctx context.Context, userID uuid.UUID, name string, typ transaction.Type) (string, error) {
	c, err := s.repo.GetCategory(ctx, userID, name, typ)
	if err != nil {
		return "", fmt.Errorf("resolving category %q: %w", name, err)
	}

	return c.Icon, nil
}
