package handlers_test

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ForgotPasswordResponse), args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, code string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, actor domain.Actor, userID string) (*domain.User, error) {
	args := m.Called(ctx, actor, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	return m.Called(ctx, actor, userID).Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, actor domain.Actor, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, actor, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, actor domain.Actor) ([]domain.Account, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) expense(args mock.Arguments) (*domain.Expense, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) expenses(args mock.Arguments) ([]domain.Expense, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) GetExpenseByID(ctx context.Context, actor domain.Actor, expenseID string) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, actor, expenseID))
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, actor domain.Actor) ([]domain.Expense, error) {
	return m.expenses(m.Called(ctx, actor))
}

func (m *MockExpenseService) ListExpensesByUser(ctx context.Context, actor domain.Actor, userID string) ([]domain.Expense, error) {
	return m.expenses(m.Called(ctx, actor, userID))
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, actor domain.Actor, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, actor, req))
}

func (m *MockExpenseService) CreateExpenseWithReceipt(ctx context.Context, actor domain.Actor, req dto.CreateExpenseRequest, receipt dto.ReceiptUpload) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, actor, req, receipt))
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, actor domain.Actor, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, actor, expenseID, req))
}

func (m *MockExpenseService) UpdateExpenseStatus(ctx context.Context, actor domain.Actor, expenseID string, status domain.ExpenseStatus) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, actor, expenseID, status))
}

func (m *MockExpenseService) AddComment(ctx context.Context, actor domain.Actor, expenseID string, req dto.AddCommentRequest) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, actor, expenseID, req))
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, actor domain.Actor, expenseID string) error {
	return m.Called(ctx, actor, expenseID).Error(0)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock IncomeService ---
type MockIncomeService struct {
	mock.Mock
}

func (m *MockIncomeService) income(args mock.Arguments) (*domain.Income, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeService) GetIncomeByID(ctx context.Context, actor domain.Actor, incomeID string) (*domain.Income, error) {
	return m.income(m.Called(ctx, actor, incomeID))
}

func (m *MockIncomeService) ListIncomes(ctx context.Context, actor domain.Actor) ([]domain.Income, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeService) GetTotalIncome(ctx context.Context, actor domain.Actor, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, actor, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockIncomeService) CreateIncome(ctx context.Context, actor domain.Actor, req dto.CreateIncomeRequest) (*domain.Income, error) {
	return m.income(m.Called(ctx, actor, req))
}

func (m *MockIncomeService) UpdateIncome(ctx context.Context, actor domain.Actor, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	return m.income(m.Called(ctx, actor, incomeID, req))
}

func (m *MockIncomeService) DeleteIncome(ctx context.Context, actor domain.Actor, incomeID string) error {
	return m.Called(ctx, actor, incomeID).Error(0)
}

var _ portssvc.IncomeSvcFacade = (*MockIncomeService)(nil)
