package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type categoryStore interface {
	GetCategory(ctx context.Context, id int64) (sqlcgen.Category, error)
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
}

// CategoryRepository exposes read access to categories.
type CategoryRepository struct {
	store categoryStore
}

// NewCategoryRepository wraps sqlc Queries for category lookups.
func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// Get fetches a category, mapping a missing row to trivia.ErrCategoryNotFound.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (trivia.Category, error) {
	row, err := r.store.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, trivia.ErrCategoryNotFound
		}
		return trivia.Category{}, err
	}
	return trivia.Category{ID: row.ID, Type: row.Type}, nil
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]trivia.Category, len(rows))
	for i, row := range rows {
		out[i] = trivia.Category{ID: row.ID, Type: row.Type}
	}
	return out, nil
}
