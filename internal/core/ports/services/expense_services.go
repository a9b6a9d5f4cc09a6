package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses. Every result has
// its references populated.
type ExpenseReaderSvc interface {
	GetExpenseByID(ctx context.Context, actor domain.Actor, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, actor domain.Actor) ([]domain.Expense, error)
	ListExpensesByUser(ctx context.Context, actor domain.Actor, userID string) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expenses.
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, actor domain.Actor, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// CreateExpenseWithReceipt uploads the receipt to the media host first and
	// deletes it again when the expense cannot be stored.
	CreateExpenseWithReceipt(ctx context.Context, actor domain.Actor, req dto.CreateExpenseRequest, receipt dto.ReceiptUpload) (*domain.Expense, error)

	UpdateExpense(ctx context.Context, actor domain.Actor, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	UpdateExpenseStatus(ctx context.Context, actor domain.Actor, expenseID string, status domain.ExpenseStatus) (*domain.Expense, error)
	AddComment(ctx context.Context, actor domain.Actor, expenseID string, req dto.AddCommentRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, actor domain.Actor, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
