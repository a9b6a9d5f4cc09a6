package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// IncomeReaderSvc defines read operations for incomes.
type IncomeReaderSvc interface {
	GetIncomeByID(ctx context.Context, actor domain.Actor, incomeID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, actor domain.Actor) ([]domain.Income, error)

	// GetTotalIncome sums userID's completed incomes. An empty userID means the actor.
	GetTotalIncome(ctx context.Context, actor domain.Actor, userID string) (decimal.Decimal, error)
}

// IncomeWriterSvc defines write operations for incomes.
type IncomeWriterSvc interface {
	CreateIncome(ctx context.Context, actor domain.Actor, req dto.CreateIncomeRequest) (*domain.Income, error)
	UpdateIncome(ctx context.Context, actor domain.Actor, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error)
	DeleteIncome(ctx context.Context, actor domain.Actor, incomeID string) error
}

// IncomeSvcFacade combines all income-related service interfaces
type IncomeSvcFacade interface {
	IncomeReaderSvc
	IncomeWriterSvc
}
