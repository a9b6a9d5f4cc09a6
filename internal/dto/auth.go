package dto

import "github.com/SscSPs/expense_tracker_app/internal/core/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the identity payload returned by every successful sign-in.
type LoginResponse struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Role     domain.RoleName `json:"role"`
	IsActive bool            `json:"isActive"`
	Token    string          `json:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordResponse exposes the token directly for local testing.
type ForgotPasswordResponse struct {
	ResetLink string `json:"resetLink"`
	Token     string `json:"token"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// ExchangeCodeRequest carries the authorization code returned by Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
