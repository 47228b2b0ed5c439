package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/repository/models"
	"feedback-builder/internal/util"
)

type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// ListCategories returns up to limit live categories ordered by name.
func (r *CategoryDatabaseAdapter) ListCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	if limit <= 0 {
		return nil, domain.NewInvalidInputError("limit must be positive")
	}

	var rows []models.Category
	query := `SELECT id, name, created_at, deleted_at FROM feedback_categories WHERE deleted_at IS NULL ORDER BY name, id FETCH FIRST :1 ROWS ONLY`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, limit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = domain.Category{ID: row.ID, Name: row.Name}
	}
	return categories, nil
}

// SaveCategory persists a new category
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	name := strings.TrimSpace(category.Name)
	if name == "" {
		return domain.NewMissingFieldError("name")
	}

	row := models.Category{
		ID:        util.NewULID(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	query := `INSERT INTO feedback_categories (id, name, created_at) VALUES (:1, :2, :3)`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, row.ID, row.Name, row.CreatedAt); err != nil {
		return fmt.Errorf("failed to save category %q: %w", name, err)
	}

	category.ID = row.ID
	category.Name = row.Name
	return nil
}
