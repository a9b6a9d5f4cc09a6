package domain

import "github.com/shopspring/decimal"

// Category groups expenses; categories are shared by all users.
type Category struct {
	CategoryID  string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy,omitempty"`
	Timestamps
}

// Subcategory refines a Category and is owned by the user who created it.
type Subcategory struct {
	SubcategoryID string `json:"_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      Ref    `json:"category"`
	UserID        string `json:"user"`
	Timestamps
}

// Vendor is a payee owned by a user.
type Vendor struct {
	VendorID string `json:"_id"`
	Title    string `json:"title"`
	UserID   string `json:"user"`
	Timestamps
}

// Account is a money source owned by a user.
type Account struct {
	AccountID   string          `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	UserID      string          `json:"user"`
	Timestamps
}
