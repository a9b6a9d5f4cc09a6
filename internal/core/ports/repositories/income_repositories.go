package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IncomeReader defines read operations for incomes. Reads populate the
// account and user references.
type IncomeReader interface {
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)

	// FindIncomes lists incomes owned by userID, or all incomes when userID is empty.
	FindIncomes(ctx context.Context, userID string) ([]domain.Income, error)

	// SumIncome totals the amounts of userID's incomes in the given status.
	SumIncome(ctx context.Context, userID string, status domain.IncomeStatus) (decimal.Decimal, error)
}

// IncomeWriter defines write operations for incomes.
type IncomeWriter interface {
	SaveIncome(ctx context.Context, income domain.Income) error
	UpdateIncome(ctx context.Context, incomeID string, patch domain.IncomePatch, updatedAt time.Time) error
	DeleteIncome(ctx context.Context, incomeID string) error
}

// IncomeRepositoryFacade combines all income-related repository interfaces
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}
