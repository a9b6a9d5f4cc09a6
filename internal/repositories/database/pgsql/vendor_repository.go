package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO vendors (vendor_id, title, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);`,
		vendor.VendorID, vendor.Title, vendor.UserID, vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		return translateWriteError(err, "vendor")
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	if !isUUID(vendorID) {
		return nil, apperrors.ErrNotFound
	}
	var v domain.Vendor
	err := r.Pool.QueryRow(ctx, `
		SELECT vendor_id, title, user_id, created_at, updated_at
		FROM vendors WHERE vendor_id = $1;`, vendorID).
		Scan(&v.VendorID, &v.Title, &v.UserID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, translateReadError(err, "vendor", vendorID)
	}
	return &v, nil
}

func (r *PgxVendorRepository) FindVendors(ctx context.Context, userID string) ([]domain.Vendor, error) {
	query := `SELECT vendor_id, title, user_id, created_at, updated_at FROM vendors`
	var args []any
	if userID != "" {
		query += ` WHERE user_id::text = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY title;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		var v domain.Vendor
		if err := rows.Scan(&v.VendorID, &v.Title, &v.UserID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		vendors = append(vendors, v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", rows.Err())
	}
	return vendors, nil
}
