package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestListUsers_AdminOnly() {
	w, env := s.do(http.MethodGet, "/user", userActor, nil)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Admin access required", env.Message)
	s.users.AssertNotCalled(s.T(), "ListUsers", mock.Anything, mock.Anything)

	s.users.On("ListUsers", mock.Anything, adminActor).
		Return([]domain.User{{UserID: adminID}, {UserID: userID}}, nil).Once()

	w, env = s.do(http.MethodGet, "/user", adminActor, nil)
	s.Equal(http.StatusOK, w.Code)
	var users []domain.User
	s.Require().NoError(json.Unmarshal(env.Data, &users))
	s.Len(users, 2)
}

func (s *HandlerTestSuite) TestAddUser() {
	s.Run("role is required", func() {
		w, env := s.do(http.MethodPost, "/user/add", adminActor, map[string]any{
			"firstName": "Bob", "lastName": "Ray", "email": "bob@example.com", "password": "secret1",
		})
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("roleId is required", env.Errors["roleId"])
	})

	s.Run("admin creates with role", func() {
		s.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(req dto.CreateUserRequest) bool {
			return req.RoleID == "role-admin"
		})).Return(&domain.User{UserID: "new", RoleName: domain.RoleAdmin}, nil).Once()

		w, _ := s.do(http.MethodPost, "/user/add", adminActor, map[string]any{
			"firstName": "Bob", "lastName": "Ray", "email": "bob@example.com", "password": "secret1", "roleId": "role-admin",
		})
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("non-admin is rejected", func() {
		w, _ := s.do(http.MethodPost, "/user/add", userActor, map[string]any{
			"firstName": "Bob", "lastName": "Ray", "email": "bob@example.com", "password": "secret1", "roleId": "role-admin",
		})
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *HandlerTestSuite) TestGetUser_ErrorMapping() {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"forbidden", fmt.Errorf("user %s: %w", adminID, apperrors.ErrForbidden), http.StatusForbidden, "You do not have access to this user"},
		{"not found", fmt.Errorf("user: %w", apperrors.ErrNotFound), http.StatusNotFound, "User not found"},
		{"unexpected", fmt.Errorf("db down"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.users.On("GetUserByID", mock.Anything, userActor, adminID).Return(nil, tt.err).Once()

			w, env := s.do(http.MethodGet, "/user/"+adminID, userActor, nil)

			s.Equal(tt.code, w.Code)
			s.Equal(tt.message, env.Message)
		})
	}
}

func (s *HandlerTestSuite) TestUpdateUser_PassesActor() {
	name := "Annie"
	s.users.On("UpdateUser", mock.Anything, userActor, userID, dto.UpdateUserRequest{FirstName: &name}).
		Return(&domain.User{UserID: userID, FirstName: name}, nil).Once()

	w, env := s.do(http.MethodPut, "/user/"+userID, userActor, map[string]any{"firstName": name})

	s.Equal(http.StatusOK, w.Code)
	s.Equal("User updated successfully", env.Message)
	s.users.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestDeleteUser_AdminOnly() {
	w, _ := s.do(http.MethodDelete, "/user/"+adminID, userActor, nil)
	s.Equal(http.StatusForbidden, w.Code)

	s.users.On("DeleteUser", mock.Anything, adminActor, userID).Return(nil).Once()
	w, env := s.do(http.MethodDelete, "/user/"+userID, adminActor, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("User deleted successfully", env.Message)
}

func (s *HandlerTestSuite) TestListRoles() {
	s.users.On("ListRoles", mock.Anything).
		Return([]domain.Role{{RoleID: "r1", Name: domain.RoleAdmin}, {RoleID: "r2", Name: domain.RoleUser}}, nil).Once()

	w, env := s.do(http.MethodGet, "/role", userActor, nil)

	s.Equal(http.StatusOK, w.Code)
	var roles []domain.Role
	s.Require().NoError(json.Unmarshal(env.Data, &roles))
	s.Len(roles, 2)
}

func (s *HandlerTestSuite) TestAccounts() {
	s.Run("create", func() {
		s.accounts.On("CreateAccount", mock.Anything, userActor, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Title == "Wallet" && req.Amount.Equal(decimal.RequireFromString("250.75"))
		})).Return(&domain.Account{AccountID: "acc-1", Title: "Wallet", Amount: decimal.RequireFromString("250.75"), UserID: userID}, nil).Once()

		w, env := s.do(http.MethodPost, "/account", userActor, `{"title":"Wallet","amount":250.75}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(string(env.Data), `"amount":250.75`)
	})

	s.Run("title required", func() {
		w, env := s.do(http.MethodPost, "/account", userActor, `{"amount":1}`)
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("title is required", env.Errors["title"])
	})

	s.Run("list", func() {
		s.accounts.On("ListAccounts", mock.Anything, adminActor).
			Return([]domain.Account{{AccountID: "a"}, {AccountID: "b"}}, nil).Once()

		w, env := s.do(http.MethodGet, "/account", adminActor, nil)
		s.Equal(http.StatusOK, w.Code)
		var accounts []domain.Account
		s.Require().NoError(json.Unmarshal(env.Data, &accounts))
		s.Len(accounts, 2)
	})

	s.Run("get not found", func() {
		s.accounts.On("GetAccountByID", mock.Anything, userActor, "missing").
			Return(nil, apperrors.ErrNotFound).Once()

		w, env := s.do(http.MethodGet, "/account/missing", userActor, nil)
		s.Equal(http.StatusNotFound, w.Code)
		s.Equal("Account not found", env.Message)
	})
}
