package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
)

var (
	ErrAccountNotFound   = apperrors.NewAppError(http.StatusUnauthorized, "No account found with this email", apperrors.ErrUnauthorized)
	ErrAccountInactive   = apperrors.NewAppError(http.StatusUnauthorized, "Account is inactive", apperrors.ErrInactiveAccount)
	ErrIncorrectPassword = apperrors.NewAppError(http.StatusUnauthorized, "Incorrect password", apperrors.ErrIncorrectPassword)
	ErrEmailNotFound     = apperrors.NewAppError(http.StatusNotFound, "No account found with this email", apperrors.ErrNotFound)
	ErrResetTokenInvalid = apperrors.NewAppError(http.StatusBadRequest, "Invalid or expired token", apperrors.ErrInvalidToken)
	ErrResetUserGone     = apperrors.NewAppError(http.StatusNotFound, "User not found", apperrors.ErrNotFound)
)

type authService struct {
	BaseService
	cfg         *config.Config
	userRepo    portsrepo.UserRepositoryFacade
	users       portssvc.UserWriterSvc
	tokens      portssvc.TokenSvcFacade
	googleOAuth portssvc.GoogleOAuthSvcFacade
	mailer      portssvc.Mailer
}

// NewAuthService wires the credential flows. userRepo is used for lookups
// and password updates; user creation goes through users so signup and
// admin-add share one code path.
func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepositoryFacade,
	users portssvc.UserWriterSvc,
	tokens portssvc.TokenSvcFacade,
	googleOAuth portssvc.GoogleOAuthSvcFacade,
	mailer portssvc.Mailer,
) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		users:       users,
		tokens:      tokens,
		googleOAuth: googleOAuth,
		mailer:      mailer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Signup(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	user, err := s.users.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	welcome := domain.MailMessage{
		To:      user.Email,
		Subject: "Welcome to Expense Tracker",
		Body: fmt.Sprintf("Hi %s,\n\nYour account has been created. You can now sign in at %s.\n",
			user.FirstName, s.cfg.FrontendBaseURL),
	}
	if err := s.mailer.Send(ctx, welcome); err != nil {
		s.LogError(ctx, err, "Failed to send welcome email", slog.String("user_id", user.UserID))
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrIncorrectPassword
	}
	return s.issueLogin(ctx, user)
}

// issueLogin builds the identity payload. The forced-role table wins over
// the stored role.
func (s *authService) issueLogin(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	role := s.cfg.ForcedRoles.Resolve(user.Email, user.RoleName)
	if role != user.RoleName {
		s.LogInfo(ctx, "Forced role applied", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	}

	token, _, err := s.tokens.GenerateAccessToken(ctx, user, role)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, err
	}

	return &dto.LoginResponse{
		ID:       user.UserID,
		Email:    user.Email,
		Name:     user.FullName(),
		Role:     role,
		IsActive: user.IsActive,
		Token:    token,
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, expiresAt, err := s.tokens.GenerateResetToken(ctx, user)
	if err != nil {
		return nil, err
	}
	link := s.cfg.FrontendBaseURL + "/reset-password/" + token

	msg := domain.MailMessage{
		To:      user.Email,
		Subject: "Reset your password",
		Body: fmt.Sprintf("Hi %s,\n\nUse the link below to choose a new password. It expires at %s.\n\n%s\n\nIf you did not ask for this, ignore this email.\n",
			user.FirstName, expiresAt.UTC().Format("15:04 MST"), link),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.LogError(ctx, err, "Failed to send reset email", slog.String("user_id", user.UserID))
	}

	return &dto.ForgotPasswordResponse{ResetLink: link, Token: token}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	userID, _, err := s.tokens.ParseResetToken(ctx, req.Token)
	if err != nil {
		s.LogDebug(ctx, "Reset token rejected", slog.String("error", err.Error()))
		return ErrResetTokenInvalid
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrResetUserGone
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.UserID, hash); err != nil {
		s.LogError(ctx, err, "Failed to store new password", slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to reset password: %w", err)
	}
	s.LogInfo(ctx, "Password reset", slog.String("user_id", user.UserID))
	return nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, code string) (*dto.LoginResponse, error) {
	oauth2Token, err := s.googleOAuth.ExchangeCodeForToken(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange authorization code with Google")
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			return nil, apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
		}
		return nil, apperrors.NewBadGatewayError("Failed to communicate with Google OAuth service.", err)
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, apperrors.NewBadGatewayError("Google did not return an ID token.", errors.New("id_token missing"))
	}

	payload, err := s.googleOAuth.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		s.LogError(ctx, err, "Google ID token validation failed")
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Invalid Google ID token", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Google account has no verified email", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		user, err = s.provisionGoogleUser(ctx, email, payload.Claims)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return s.issueLogin(ctx, user)
}

// provisionGoogleUser creates a default-role user for a first Google sign-in.
// The random password keeps the account closed to password login until reset.
func (s *authService) provisionGoogleUser(ctx context.Context, email string, claims map[string]any) (*domain.User, error) {
	firstName, _ := claims["given_name"].(string)
	lastName, _ := claims["family_name"].(string)
	if firstName == "" {
		firstName, _, _ = strings.Cut(email, "@")
	}
	if lastName == "" {
		lastName = "-"
	}

	password, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, dto.CreateUserRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User provisioned from Google sign-in", slog.String("user_id", user.UserID))
	return user, nil
}
