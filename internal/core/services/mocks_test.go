package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) userResult(args mock.Arguments) (*domain.User, error) {
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, userID))
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, email))
}

func (m *MockUserRepository) FindUserByExactEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.userResult(m.Called(ctx, email))
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	return m.Called(ctx, userID, passwordHash).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Mock RoleRepository ---
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	args := m.Called(ctx, roleID)
	var role *domain.Role
	if args.Get(0) != nil {
		role = args.Get(0).(*domain.Role)
	}
	return role, args.Error(1)
}

func (m *MockRoleRepository) FindRoleByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	args := m.Called(ctx, name)
	var role *domain.Role
	if args.Get(0) != nil {
		role = args.Get(0).(*domain.Role)
	}
	return role, args.Error(1)
}

func (m *MockRoleRepository) FindRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	var roles []domain.Role
	if args.Get(0) != nil {
		roles = args.Get(0).([]domain.Role)
	}
	return roles, args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) FindExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expenseID string, patch domain.ExpensePatch, updatedAt time.Time) error {
	return m.Called(ctx, expenseID, patch, updatedAt).Error(0)
}

func (m *MockExpenseRepository) UpdateExpenseStatus(ctx context.Context, expenseID string, status domain.ExpenseStatus, updatedAt time.Time) error {
	return m.Called(ctx, expenseID, status, updatedAt).Error(0)
}

func (m *MockExpenseRepository) AppendExpenseComment(ctx context.Context, expenseID string, comment domain.Comment) error {
	return m.Called(ctx, expenseID, comment).Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	return m.Called(ctx, expenseID).Error(0)
}

// --- Mock IncomeRepository ---
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID)
	var income *domain.Income
	if args.Get(0) != nil {
		income = args.Get(0).(*domain.Income)
	}
	return income, args.Error(1)
}

func (m *MockIncomeRepository) FindIncomes(ctx context.Context, userID string) ([]domain.Income, error) {
	args := m.Called(ctx, userID)
	var incomes []domain.Income
	if args.Get(0) != nil {
		incomes = args.Get(0).([]domain.Income)
	}
	return incomes, args.Error(1)
}

func (m *MockIncomeRepository) SumIncome(ctx context.Context, userID string, status domain.IncomeStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	return m.Called(ctx, income).Error(0)
}

func (m *MockIncomeRepository) UpdateIncome(ctx context.Context, incomeID string, patch domain.IncomePatch, updatedAt time.Time) error {
	return m.Called(ctx, incomeID, patch, updatedAt).Error(0)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	return m.Called(ctx, incomeID).Error(0)
}

// --- Mock catalog repositories ---
type MockSubcategoryRepository struct {
	mock.Mock
}

func (m *MockSubcategoryRepository) SaveSubcategory(ctx context.Context, subcategory domain.Subcategory) error {
	return m.Called(ctx, subcategory).Error(0)
}

func (m *MockSubcategoryRepository) FindSubcategoryByID(ctx context.Context, subcategoryID string) (*domain.Subcategory, error) {
	args := m.Called(ctx, subcategoryID)
	var s *domain.Subcategory
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Subcategory)
	}
	return s, args.Error(1)
}

func (m *MockSubcategoryRepository) FindSubcategories(ctx context.Context, filter portsrepo.SubcategoryFilter) ([]domain.Subcategory, error) {
	args := m.Called(ctx, filter)
	var s []domain.Subcategory
	if args.Get(0) != nil {
		s = args.Get(0).([]domain.Subcategory)
	}
	return s, args.Error(1)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	var v *domain.Vendor
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.Vendor)
	}
	return v, args.Error(1)
}

func (m *MockVendorRepository) FindVendors(ctx context.Context, userID string) ([]domain.Vendor, error) {
	args := m.Called(ctx, userID)
	var v []domain.Vendor
	if args.Get(0) != nil {
		v = args.Get(0).([]domain.Vendor)
	}
	return v, args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var a *domain.Account
	if args.Get(0) != nil {
		a = args.Get(0).(*domain.Account)
	}
	return a, args.Error(1)
}

func (m *MockAccountRepository) FindAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	var a []domain.Account
	if args.Get(0) != nil {
		a = args.Get(0).([]domain.Account)
	}
	return a, args.Error(1)
}

// --- Mock integrations ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(ctx context.Context, localPath, objectName, contentType string) (*domain.StoredAsset, error) {
	args := m.Called(ctx, localPath, objectName, contentType)
	var asset *domain.StoredAsset
	if args.Get(0) != nil {
		asset = args.Get(0).(*domain.StoredAsset)
	}
	return asset, args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, objectName string) error {
	return m.Called(ctx, objectName).Error(0)
}
