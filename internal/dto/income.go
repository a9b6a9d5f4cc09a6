package dto

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateIncomeRequest struct {
	Title           string          `json:"title" binding:"required"`
	AccountID       string          `json:"account" binding:"required"`
	UserID          string          `json:"user"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transactionDate"`
	Description     string          `json:"description"`
	Status          string          `json:"status" binding:"omitempty,income_status"`
}

// UpdateIncomeRequest defines the editable income fields; nil means unchanged.
type UpdateIncomeRequest struct {
	Title           *string              `json:"title"`
	AccountID       *string              `json:"account"`
	Amount          *decimal.Decimal     `json:"amount"`
	TransactionDate *string              `json:"transactionDate"`
	Description     *string              `json:"description"`
	Status          *domain.IncomeStatus `json:"status" binding:"omitempty,income_status"`
}

// IncomeTotalParams defines query parameters for the income total.
type IncomeTotalParams struct {
	UserID string `form:"userId"`
}

type IncomeTotalResponse struct {
	TotalIncome decimal.Decimal `json:"totalIncome"`
}
