package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSubcategoryRepository struct {
	BaseRepository
}

func newPgxSubcategoryRepository(pool *pgxpool.Pool) portsrepo.SubcategoryRepositoryFacade {
	return &PgxSubcategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SubcategoryRepositoryFacade = (*PgxSubcategoryRepository)(nil)

const selectSubcategoryColumns = `
	SELECT s.subcategory_id, s.name, s.description, s.category_id, COALESCE(c.name, ''),
	       s.user_id, s.created_at, s.updated_at
	FROM subcategories s
	LEFT JOIN categories c ON c.category_id = s.category_id`

func scanSubcategory(row pgx.Row) (*domain.Subcategory, error) {
	var s domain.Subcategory
	err := row.Scan(
		&s.SubcategoryID,
		&s.Name,
		&s.Description,
		&s.Category.ID,
		&s.Category.Name,
		&s.UserID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSubcategoryRepository) SaveSubcategory(ctx context.Context, subcategory domain.Subcategory) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO subcategories (subcategory_id, name, description, category_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		subcategory.SubcategoryID,
		subcategory.Name,
		subcategory.Description,
		subcategory.Category.ID,
		subcategory.UserID,
		subcategory.CreatedAt,
		subcategory.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "subcategory")
	}
	return nil
}

func (r *PgxSubcategoryRepository) FindSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.Subcategory, error) {
	if !isUUID(subcategoryID) {
		return nil, apperrors.ErrNotFound
	}
	subcategory, err := scanSubcategory(r.Pool.QueryRow(ctx, selectSubcategoryColumns+` WHERE s.subcategory_id = $1;`, subcategoryID))
	if err != nil {
		return nil, translateReadError(err, "subcategory", subcategoryID)
	}
	return subcategory, nil
}

func (r *PgxSubcategoryRepository) FindSubcategories(ctx context.Context, filter portsrepo.SubcategoryFilter) ([]domain.Subcategory, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.CategoryID != "" {
		if !isUUID(filter.CategoryID) {
			return []domain.Subcategory{}, nil
		}
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("s.category_id = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("s.user_id::text = $%d", len(args)))
	}

	query := selectSubcategoryColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.name;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query subcategories: %w", err)
	}
	defer rows.Close()

	subcategories := []domain.Subcategory{}
	for rows.Next() {
		subcategory, err := scanSubcategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subcategory row: %w", err)
		}
		subcategories = append(subcategories, *subcategory)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating subcategory rows: %w", rows.Err())
	}
	return subcategories, nil
}
