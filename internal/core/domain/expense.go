package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCommentAuthor labels comments appended without an author.
const DefaultCommentAuthor = "Anonymous"

// Comment is an entry in an expense's append-only discussion.
type Comment struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expense is money spent, referencing five other records.
type Expense struct {
	ExpenseID       string          `json:"_id"`
	Title           string          `json:"title"`
	Category        Ref             `json:"category"`
	Subcategory     Ref             `json:"subcategory"`
	Vendor          Ref             `json:"vendor"`
	Account         Ref             `json:"account"`
	User            Ref             `json:"user"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	Status          ExpenseStatus   `json:"status"`
	ReceiptURL      string          `json:"image,omitempty"`
	ReceiptObject   string          `json:"-"`
	Comments        []Comment       `json:"comments"`
	Timestamps
}

// ExpenseFilter narrows an expense listing. An empty UserID lists all.
type ExpenseFilter struct {
	UserID string
}

// ExpensePatch carries the editable fields of an expense; nil means unchanged.
type ExpensePatch struct {
	Title           *string
	CategoryID      *string
	SubcategoryID   *string
	VendorID        *string
	AccountID       *string
	Amount          *decimal.Decimal
	TransactionDate *time.Time
	Description     *string
}
