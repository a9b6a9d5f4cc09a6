package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestSignup_Success() {
	s.auth.On("Signup", mock.Anything, mock.MatchedBy(func(req dto.CreateUserRequest) bool {
		return req.Email == "ann@example.com" && req.RoleID == ""
	})).Return(&domain.User{UserID: userID, Email: "ann@example.com", RoleName: domain.RoleUser, IsActive: true}, nil).Once()

	w, env := s.do(http.MethodPost, "/user", domain.Actor{}, map[string]any{
		"firstName": "Ann",
		"lastName":  "Lee",
		"email":     "ann@example.com",
		"password":  "secret1",
		"roleId":    "sneaky-admin-role",
	})

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("User created successfully", env.Message)
	var user domain.User
	s.Require().NoError(json.Unmarshal(env.Data, &user))
	s.Equal(userID, user.UserID)
	s.NotContains(string(env.Data), "password")
	s.auth.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestSignup_ValidationErrors() {
	w, env := s.do(http.MethodPost, "/user", domain.Actor{}, map[string]any{
		"firstName": "Ann",
		"email":     "not-an-email",
		"password":  "123",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Validation failed", env.Message)
	s.Equal("lastName is required", env.Errors["lastName"])
	s.Equal("must be a valid email address", env.Errors["email"])
	s.Equal("must be at least 6 characters", env.Errors["password"])
	s.auth.AssertNotCalled(s.T(), "Signup", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestSignup_MalformedBody() {
	w, env := s.do(http.MethodPost, "/user", domain.Actor{}, `{"firstName":`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request body", env.Message)
}

func (s *HandlerTestSuite) TestSignup_DuplicateEmail() {
	s.auth.On("Signup", mock.Anything, mock.Anything).Return(nil, services.ErrUserExists).Once()

	w, env := s.do(http.MethodPost, "/user", domain.Actor{}, map[string]any{
		"firstName": "Ann", "lastName": "Lee", "email": "ann@example.com", "password": "secret1",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("User with this email already exists", env.Message)
}

func (s *HandlerTestSuite) TestLogin_Success() {
	s.auth.On("Login", mock.Anything, dto.LoginRequest{Email: "ann@example.com", Password: "secret1"}).
		Return(&dto.LoginResponse{ID: userID, Email: "ann@example.com", Role: domain.RoleUser, IsActive: true, Token: "jwt"}, nil).Once()

	w, env := s.do(http.MethodPost, "/user/login", domain.Actor{}, map[string]any{"email": "ann@example.com", "password": "secret1"})

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("Login successful", env.Message)
	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(env.Data, &resp))
	s.Equal("jwt", resp.Token)
	s.Equal(domain.RoleUser, resp.Role)
	s.NotEmpty(w.Header().Get("X-RateLimit-Limit"))
}

func (s *HandlerTestSuite) TestLogin_Failures() {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"unknown email", services.ErrAccountNotFound, "No account found with this email"},
		{"inactive account", services.ErrAccountInactive, "Account is inactive"},
		{"wrong password", services.ErrIncorrectPassword, "Incorrect password"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.auth.On("Login", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w, env := s.do(http.MethodPost, "/user/login", domain.Actor{}, map[string]any{"email": "ann@example.com", "password": "whatever"})

			s.Equal(http.StatusUnauthorized, w.Code)
			s.Equal(tt.message, env.Message)
		})
	}
}

func (s *HandlerTestSuite) TestLogin_RateLimited() {
	s.cfg.LoginRateLimit = "1-M"
	s.router = s.newRouter(s.cfg)
	s.auth.On("Login", mock.Anything, mock.Anything).Return(&dto.LoginResponse{ID: userID, Token: "jwt"}, nil).Once()

	body := map[string]any{"email": "ann@example.com", "password": "secret1"}
	w, _ := s.do(http.MethodPost, "/user/login", domain.Actor{}, body)
	s.Equal(http.StatusCreated, w.Code)

	w, env := s.do(http.MethodPost, "/user/login", domain.Actor{}, body)
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal("Too many requests. Please try again later.", env.Message)
	s.auth.AssertNumberOfCalls(s.T(), "Login", 1)
}

func (s *HandlerTestSuite) TestForgotPassword() {
	s.Run("sends link", func() {
		s.auth.On("ForgotPassword", mock.Anything, "ann@example.com").
			Return(&dto.ForgotPasswordResponse{ResetLink: "http://localhost:3000/reset-password/tok", Token: "tok"}, nil).Once()

		w, env := s.do(http.MethodPost, "/user/forgotpassword", domain.Actor{}, map[string]any{"email": "ann@example.com"})

		s.Equal(http.StatusOK, w.Code)
		s.Equal("Password reset link sent", env.Message)
		s.Contains(string(env.Data), "reset-password/tok")
	})

	s.Run("unknown email", func() {
		s.auth.On("ForgotPassword", mock.Anything, "ghost@example.com").Return(nil, services.ErrEmailNotFound).Once()

		w, env := s.do(http.MethodPost, "/user/forgotpassword", domain.Actor{}, map[string]any{"email": "ghost@example.com"})

		s.Equal(http.StatusNotFound, w.Code)
		s.Equal("No account found with this email", env.Message)
	})
}

func (s *HandlerTestSuite) TestResetPassword() {
	s.Run("success", func() {
		req := dto.ResetPasswordRequest{Token: "good", Password: "newsecret"}
		s.auth.On("ResetPassword", mock.Anything, req).Return(nil).Once()

		w, env := s.do(http.MethodPost, "/user/resetpassword", domain.Actor{}, req)

		s.Equal(http.StatusOK, w.Code)
		s.Equal("Password reset successful", env.Message)
	})

	s.Run("invalid token", func() {
		s.auth.On("ResetPassword", mock.Anything, mock.Anything).Return(services.ErrResetTokenInvalid).Once()

		w, env := s.do(http.MethodPost, "/user/resetpassword", domain.Actor{}, map[string]any{"token": "bad", "password": "newsecret"})

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("Invalid or expired token", env.Message)
	})

	s.Run("short password never reaches the service", func() {
		w, env := s.do(http.MethodPost, "/user/resetpassword", domain.Actor{}, map[string]any{"token": "good", "password": "123"})

		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(env.Errors, "password")
	})
}

func (s *HandlerTestSuite) TestGoogleExchangeCode() {
	s.auth.On("LoginWithGoogle", mock.Anything, "auth-code").
		Return(&dto.LoginResponse{ID: userID, Email: "ann@example.com", Token: "jwt"}, nil).Once()

	w, env := s.do(http.MethodPost, "/user/google/exchange-code", domain.Actor{}, map[string]any{"code": "auth-code"})

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(string(env.Data), `"token":"jwt"`)
}
