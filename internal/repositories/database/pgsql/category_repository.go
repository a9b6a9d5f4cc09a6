package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const selectCategoryColumns = `SELECT category_id, name, description, created_by, created_at, updated_at FROM categories`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	var createdBy sql.NullString
	if err := row.Scan(&c.CategoryID, &c.Name, &c.Description, &createdBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CreatedBy = createdBy.String
	return &c, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	var createdBy sql.NullString
	if category.CreatedBy != "" {
		createdBy = sql.NullString{String: category.CreatedBy, Valid: true}
	}
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO categories (category_id, name, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		category.CategoryID,
		category.Name,
		category.Description,
		createdBy,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "category")
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	if !isUUID(categoryID) {
		return nil, apperrors.ErrNotFound
	}
	category, err := scanCategory(r.Pool.QueryRow(ctx, selectCategoryColumns+` WHERE category_id = $1;`, categoryID))
	if err != nil {
		return nil, translateReadError(err, "category", categoryID)
	}
	return category, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, selectCategoryColumns+` ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}
