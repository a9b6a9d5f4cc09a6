package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoleRepository struct {
	db *pgxpool.Pool
}

func newPgxRoleRepository(db *pgxpool.Pool) portsrepo.RoleReader {
	return &PgxRoleRepository{db: db}
}

var _ portsrepo.RoleReader = (*PgxRoleRepository)(nil)

func (r *PgxRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	if !isUUID(roleID) {
		return nil, apperrors.ErrNotFound
	}
	var role domain.Role
	err := r.db.QueryRow(ctx, `SELECT role_id, name, description FROM roles WHERE role_id = $1;`, roleID).
		Scan(&role.RoleID, &role.Name, &role.Description)
	if err != nil {
		return nil, translateReadError(err, "role", roleID)
	}
	return &role, nil
}

func (r *PgxRoleRepository) FindRoleByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRow(ctx, `SELECT role_id, name, description FROM roles WHERE name = $1;`, string(name)).
		Scan(&role.RoleID, &role.Name, &role.Description)
	if err != nil {
		return nil, translateReadError(err, "role", string(name))
	}
	return &role, nil
}

func (r *PgxRoleRepository) FindRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT role_id, name, description FROM roles ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.RoleID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, role)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", rows.Err())
	}
	return roles, nil
}
