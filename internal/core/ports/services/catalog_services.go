package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// CategorySvcFacade manages the shared categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// SubcategorySvcFacade manages user subcategories.
type SubcategorySvcFacade interface {
	CreateSubcategory(ctx context.Context, actor domain.Actor, req dto.CreateSubcategoryRequest) (*domain.Subcategory, error)
	GetSubcategoryByID(ctx context.Context, actor domain.Actor, subcategoryID string) (*domain.Subcategory, error)
	// ListSubcategories lists the actor's subcategories (all for admins),
	// optionally narrowed to one category.
	ListSubcategories(ctx context.Context, actor domain.Actor, categoryID string) ([]domain.Subcategory, error)
}

// VendorSvcFacade manages user vendors.
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, actor domain.Actor, req dto.CreateVendorRequest) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, actor domain.Actor, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, actor domain.Actor) ([]domain.Vendor, error)
}

// AccountSvcFacade manages user accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, actor domain.Actor, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, actor domain.Actor) ([]domain.Account, error)
}
