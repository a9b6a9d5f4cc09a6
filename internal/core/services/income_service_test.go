package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type IncomeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockIncomeRepository
	service  portssvc.IncomeSvcFacade
	ctx      context.Context
	owner    domain.Actor
	admin    domain.Actor
}

func (suite *IncomeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockIncomeRepository)
	suite.service = services.NewIncomeService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.owner = domain.Actor{UserID: "owner-1", Role: domain.RoleUser}
	suite.admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
}

func (suite *IncomeServiceTestSuite) stored(id string) *domain.Income {
	return &domain.Income{
		IncomeID: id,
		Title:    "Salary",
		Account:  domain.Ref{ID: "acc-1", Title: "Bank"},
		User:     domain.Ref{ID: suite.owner.UserID, Name: "Ann Lee"},
		Amount:   decimal.NewFromInt(1000),
		Status:   domain.IncomeCompleted,
	}
}

// --- GetTotalIncome Tests ---
func (suite *IncomeServiceTestSuite) TestGetTotalIncome_DefaultsToCaller() {
	suite.mockRepo.On("SumIncome", suite.ctx, suite.owner.UserID, domain.IncomeCompleted).
		Return(decimal.RequireFromString("1500.50"), nil).Once()

	total, err := suite.service.GetTotalIncome(suite.ctx, suite.owner, "")

	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.RequireFromString("1500.50")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestGetTotalIncome_NoIncomesIsZero() {
	suite.mockRepo.On("SumIncome", suite.ctx, "someone", domain.IncomeCompleted).Return(decimal.Zero, nil).Once()

	total, err := suite.service.GetTotalIncome(suite.ctx, suite.admin, "someone")

	suite.Require().NoError(err)
	suite.True(total.IsZero())
}

func (suite *IncomeServiceTestSuite) TestGetTotalIncome_OtherUserForbidden() {
	_, err := suite.service.GetTotalIncome(suite.ctx, suite.owner, "someone")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumIncome", mock.Anything, mock.Anything, mock.Anything)
}

// --- CreateIncome Tests ---
func (suite *IncomeServiceTestSuite) TestCreateIncome_DefaultsToPending() {
	suite.mockRepo.On("SaveIncome", suite.ctx, mock.MatchedBy(func(i domain.Income) bool {
		return i.Status == domain.IncomePending && i.User.ID == suite.owner.UserID && i.Title == "Salary"
	})).Return(nil).Once()
	suite.mockRepo.On("FindIncomeByID", suite.ctx, mock.AnythingOfType("string")).Return(suite.stored("i1"), nil).Once()

	income, err := suite.service.CreateIncome(suite.ctx, suite.owner, dto.CreateIncomeRequest{
		Title:     " Salary ",
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(1000),
	})

	suite.Require().NoError(err)
	suite.Equal("Bank", income.Account.Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestCreateIncome_Validation() {
	_, err := suite.service.CreateIncome(suite.ctx, suite.owner, dto.CreateIncomeRequest{
		Title:     "Salary",
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(-5),
		Status:    "done",
	})

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "amount")
	suite.Contains(fieldErrs, "status")
}

// --- UpdateIncome Tests ---
func (suite *IncomeServiceTestSuite) TestUpdateIncome_Status() {
	status := domain.IncomeRejected
	suite.mockRepo.On("FindIncomeByID", suite.ctx, "i1").Return(suite.stored("i1"), nil).Twice()
	suite.mockRepo.On("UpdateIncome", suite.ctx, "i1", mock.MatchedBy(func(p domain.IncomePatch) bool {
		return p.Status != nil && *p.Status == domain.IncomeRejected && p.Title == nil
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.UpdateIncome(suite.ctx, suite.owner, "i1", dto.UpdateIncomeRequest{Status: &status})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestUpdateIncome_Forbidden() {
	suite.mockRepo.On("FindIncomeByID", suite.ctx, "i1").Return(suite.stored("i1"), nil).Once()
	title := "x"

	_, err := suite.service.UpdateIncome(suite.ctx, domain.Actor{UserID: "other", Role: domain.RoleUser}, "i1",
		dto.UpdateIncomeRequest{Title: &title})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Read / Delete Tests ---
func (suite *IncomeServiceTestSuite) TestListIncomes_ScopedByRole() {
	suite.mockRepo.On("FindIncomes", suite.ctx, suite.owner.UserID).Return([]domain.Income{*suite.stored("i1")}, nil).Once()
	suite.mockRepo.On("FindIncomes", suite.ctx, "").Return([]domain.Income{}, nil).Once()

	mine, err := suite.service.ListIncomes(suite.ctx, suite.owner)
	suite.Require().NoError(err)
	suite.Len(mine, 1)

	_, err = suite.service.ListIncomes(suite.ctx, suite.admin)
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestDeleteIncome() {
	suite.mockRepo.On("FindIncomeByID", suite.ctx, "i1").Return(suite.stored("i1"), nil).Once()
	suite.mockRepo.On("DeleteIncome", suite.ctx, "i1").Return(assert.AnError).Once()

	err := suite.service.DeleteIncome(suite.ctx, suite.owner, "i1")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *IncomeServiceTestSuite) TestGetIncomeByID_NotFound() {
	suite.mockRepo.On("FindIncomeByID", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetIncomeByID(suite.ctx, suite.owner, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestIncomeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}
