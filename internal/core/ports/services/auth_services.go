package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade covers the credential flows: signup, login and password recovery.
type AuthSvcFacade interface {
	// Signup creates a user and sends a welcome mail. Mail failures never fail signup.
	Signup(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// Login checks, in order: the account exists, it is active, the password matches.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// ForgotPassword issues a reset token and mails the reset link.
	ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResponse, error)

	// ResetPassword consumes a reset token and stores the new password hash.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error

	// LoginWithGoogle signs in (provisioning on first use) with a Google authorization code.
	LoginWithGoogle(ctx context.Context, code string) (*dto.LoginResponse, error)
}

// TokenSvcFacade issues and verifies the signed tokens used by the API.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User, role domain.RoleName) (string, time.Time, error)
	GenerateResetToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ParseResetToken returns the user id and email embedded in a valid reset token.
	ParseResetToken(ctx context.Context, token string) (userID string, email string, err error)
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
