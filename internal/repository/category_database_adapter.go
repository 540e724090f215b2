package repository

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const listCategoriesQuery = `SELECT id "id", type "type" FROM categories ORDER BY type ASC`

type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// ListAll implements domain.CategoryRepository
func (r *CategoryDatabaseAdapter) ListAll(ctx context.Context) ([]*domain.Category, error) {
	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, listCategoriesQuery); err != nil {
		return nil, domain.NewStoreError("failed to list categories", err)
	}

	domainCategories := make([]*domain.Category, len(categories))
	for i := range categories {
		domainCategories[i] = toDomainCategory(&categories[i])
	}
	return domainCategories, nil
}

func toDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}
