package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// RoleReader defines read operations for the seeded roles.
type RoleReader interface {
	FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error)
	FindRoleByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
	FindRoles(ctx context.Context) ([]domain.Role, error)
}
