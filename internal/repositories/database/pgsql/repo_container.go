package pgsql

import (
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		RoleRepo:        newPgxRoleRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		SubcategoryRepo: newPgxSubcategoryRepository(dbPool),
		VendorRepo:      newPgxVendorRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		IncomeRepo:      newPgxIncomeRepository(dbPool),
	}
}
