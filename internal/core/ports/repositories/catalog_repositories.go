package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// CategoryRepositoryFacade stores the shared expense categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategories(ctx context.Context) ([]domain.Category, error)
}

// SubcategoryFilter narrows a subcategory listing. Empty fields match all.
type SubcategoryFilter struct {
	CategoryID string
	UserID     string
}

// SubcategoryRepositoryFacade stores user subcategories. Reads populate the
// parent category's name.
type SubcategoryRepositoryFacade interface {
	SaveSubcategory(ctx context.Context, subcategory domain.Subcategory) error
	FindSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.Subcategory, error)
	FindSubcategories(ctx context.Context, filter SubcategoryFilter) ([]domain.Subcategory, error)
}

// VendorRepositoryFacade stores user vendors.
type VendorRepositoryFacade interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	// FindVendors lists vendors owned by userID, or all vendors when userID is empty.
	FindVendors(ctx context.Context, userID string) ([]domain.Vendor, error)
}

// AccountRepositoryFacade stores user accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccounts lists accounts owned by userID, or all accounts when userID is empty.
	FindAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}
