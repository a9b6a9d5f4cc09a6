package dto

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is bound from JSON or from the form fields of a
// multipart upload. User is honoured for admins only; everyone else
// records expenses for themselves.
type CreateExpenseRequest struct {
	Title           string          `json:"title" form:"title" binding:"required"`
	CategoryID      string          `json:"category" form:"category" binding:"required"`
	SubcategoryID   string          `json:"subcategory" form:"subcategory" binding:"required"`
	VendorID        string          `json:"vendor" form:"vendor" binding:"required"`
	AccountID       string          `json:"account" form:"account" binding:"required"`
	UserID          string          `json:"user" form:"user"`
	Amount          decimal.Decimal `json:"amount" form:"amount"`
	TransactionDate string          `json:"transactionDate" form:"transactionDate"`
	Description     string          `json:"description" form:"description"`
	Status          string          `json:"status" form:"status" binding:"omitempty,expense_status"`
}

// UpdateExpenseRequest defines the editable expense fields; nil means unchanged.
type UpdateExpenseRequest struct {
	Title           *string          `json:"title"`
	CategoryID      *string          `json:"category"`
	SubcategoryID   *string          `json:"subcategory"`
	VendorID        *string          `json:"vendor"`
	AccountID       *string          `json:"account"`
	Amount          *decimal.Decimal `json:"amount"`
	TransactionDate *string          `json:"transactionDate"`
	Description     *string          `json:"description"`
}

type UpdateExpenseStatusRequest struct {
	Status domain.ExpenseStatus `json:"status" binding:"required,expense_status"`
}

type AddCommentRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}

// ReceiptUpload points at a receipt already written to local disk.
type ReceiptUpload struct {
	LocalPath   string
	FileName    string
	ContentType string
}
