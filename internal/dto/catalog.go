package dto

import "github.com/shopspring/decimal"

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateSubcategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CategoryID  string `json:"category" binding:"required"`
}

// ListSubcategoriesParams defines query parameters for listing subcategories.
type ListSubcategoriesParams struct {
	CategoryID string `form:"categoryId"`
}

type CreateVendorRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreateAccountRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
