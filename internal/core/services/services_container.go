package services

import (
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
)

// Integrations are the outbound collaborators services talk to. Media may be
// nil, which disables receipt uploads.
type Integrations struct {
	Mailer portssvc.Mailer
	Media  portssvc.MediaStore
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, integrations Integrations) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.RoleRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Auth = NewAuthService(cfg, repos.UserRepo, container.User, container.Token, container.GoogleOAuth, integrations.Mailer)

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Subcategory = NewSubcategoryService(repos.SubcategoryRepo)
	container.Vendor = NewVendorService(repos.VendorRepo)
	container.Account = NewAccountService(repos.AccountRepo)

	var expenseOpts []ExpenseServiceOption
	if integrations.Media != nil {
		expenseOpts = append(expenseOpts, WithMediaStore(integrations.Media))
	}
	container.Expense = NewExpenseService(repos.ExpenseRepo, expenseOpts...)
	container.Income = NewIncomeService(repos.IncomeRepo)

	return container
}
