package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// ExpenseReader defines read operations for expenses. Reads always populate
// the category, subcategory, vendor, account and user references.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpenses lists expenses newest first. A filter UserID that is not
	// a UUID is matched as plain text instead of failing.
	FindExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses. Status, comments and
// the remaining fields are updated independently of one another.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expenseID string, patch domain.ExpensePatch, updatedAt time.Time) error
	UpdateExpenseStatus(ctx context.Context, expenseID string, status domain.ExpenseStatus, updatedAt time.Time) error
	AppendExpenseComment(ctx context.Context, expenseID string, comment domain.Comment) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
