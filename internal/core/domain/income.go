package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is money received into an account.
type Income struct {
	IncomeID        string          `json:"_id"`
	Title           string          `json:"title"`
	Account         Ref             `json:"account"`
	User            Ref             `json:"user"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	Status          IncomeStatus    `json:"status"`
	Timestamps
}

// IncomePatch carries the editable fields of an income; nil means unchanged.
type IncomePatch struct {
	Title           *string
	AccountID       *string
	Amount          *decimal.Decimal
	TransactionDate *time.Time
	Description     *string
	Status          *IncomeStatus
}
