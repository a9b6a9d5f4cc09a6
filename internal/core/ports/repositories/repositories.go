package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	RoleRepo        RoleReader
	CategoryRepo    CategoryRepositoryFacade
	SubcategoryRepo SubcategoryRepositoryFacade
	VendorRepo      VendorRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	IncomeRepo      IncomeRepositoryFacade
}
