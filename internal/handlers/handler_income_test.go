package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestIncomeTotal() {
	s.Run("defaults to caller", func() {
		s.incomes.On("GetTotalIncome", mock.Anything, userActor, "").Return(decimal.RequireFromString("1500.25"), nil).Once()

		w, _ := s.do(http.MethodGet, "/income/total", userActor, nil)

		s.Equal(http.StatusOK, w.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal(1500.25, body["totalIncome"])
		s.Equal(map[string]any{"totalIncome": 1500.25}, body["data"])
	})

	s.Run("zero when nothing completed", func() {
		s.incomes.On("GetTotalIncome", mock.Anything, adminActor, userID).Return(decimal.Zero, nil).Once()

		w, _ := s.do(http.MethodGet, "/income/total?userId="+userID, adminActor, nil)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"message":"Total income fetched successfully","data":{"totalIncome":0},"totalIncome":0}`, w.Body.String())
	})

	s.Run("other user forbidden", func() {
		s.incomes.On("GetTotalIncome", mock.Anything, userActor, adminID).Return(decimal.Zero, apperrors.ErrForbidden).Once()

		w, _ := s.do(http.MethodGet, "/income/total?userId="+adminID, userActor, nil)

		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *HandlerTestSuite) TestCreateIncome() {
	s.Run("created", func() {
		s.incomes.On("CreateIncome", mock.Anything, userActor, mock.MatchedBy(func(req dto.CreateIncomeRequest) bool {
			return req.Title == "Salary" && req.AccountID == "acc-1" && req.Amount.Equal(decimal.NewFromInt(3000))
		})).Return(&domain.Income{IncomeID: "inc-1", Title: "Salary", Status: domain.IncomePending, Amount: decimal.NewFromInt(3000)}, nil).Once()

		w, env := s.do(http.MethodPost, "/income", userActor, `{"title":"Salary","account":"acc-1","amount":3000}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(string(env.Data), `"status":"pending"`)
		s.Contains(string(env.Data), `"amount":3000`)
	})

	s.Run("invalid status", func() {
		w, env := s.do(http.MethodPost, "/income", userActor, `{"title":"Salary","account":"acc-1","status":"done"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("must be one of pending, completed, rejected", env.Errors["status"])
	})

	s.Run("service validation", func() {
		s.incomes.On("CreateIncome", mock.Anything, userActor, mock.Anything).
			Return(nil, apperrors.FieldErrors{"amount": "amount must not be negative"}).Once()

		w, env := s.do(http.MethodPost, "/income", userActor, `{"title":"Salary","account":"acc-1","amount":-1}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("amount must not be negative", env.Errors["amount"])
	})
}

func (s *HandlerTestSuite) TestUpdateIncome_Status() {
	s.Run("completed", func() {
		s.incomes.On("UpdateIncome", mock.Anything, userActor, "inc-1", mock.MatchedBy(func(req dto.UpdateIncomeRequest) bool {
			return req.Status != nil && *req.Status == domain.IncomeCompleted
		})).Return(&domain.Income{IncomeID: "inc-1", Status: domain.IncomeCompleted}, nil).Once()

		w, _ := s.do(http.MethodPut, "/income/inc-1", userActor, `{"status":"completed"}`)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("unknown status", func() {
		w, env := s.do(http.MethodPut, "/income/inc-1", userActor, `{"status":"approved"}`)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(env.Errors["status"], "pending, completed, rejected")
	})
}

func (s *HandlerTestSuite) TestIncomeReadsAndDelete() {
	s.incomes.On("ListIncomes", mock.Anything, userActor).Return([]domain.Income{{IncomeID: "inc-1"}}, nil).Once()
	w, _ := s.do(http.MethodGet, "/income", userActor, nil)
	s.Equal(http.StatusOK, w.Code)

	s.incomes.On("GetIncomeByID", mock.Anything, userActor, "inc-2").Return(nil, apperrors.ErrNotFound).Once()
	w, env := s.do(http.MethodGet, "/income/inc-2", userActor, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Income not found", env.Message)

	s.incomes.On("DeleteIncome", mock.Anything, userActor, "inc-1").Return(nil).Once()
	w, env = s.do(http.MethodDelete, "/income/inc-1", userActor, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Income deleted successfully", env.Message)
}
