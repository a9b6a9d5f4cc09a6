package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
)

// tokenService signs access tokens and password reset tokens. The two use
// separate secrets.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User, role domain.RoleName) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, string(role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiryTime, nil
}

func (s *tokenService) GenerateResetToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.ResetTokenExpiryDuration)
	token, err := utils.GenerateResetToken(user.UserID, user.Email, s.cfg.ResetTokenSecret, s.cfg.ResetTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign reset token: %w", err)
	}
	return token, expiryTime, nil
}

func (s *tokenService) ParseResetToken(ctx context.Context, token string) (string, string, error) {
	claims, err := utils.ParseResetToken(token, s.cfg.ResetTokenSecret)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	return claims.Subject, claims.Email, nil
}
