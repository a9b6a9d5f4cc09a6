package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.ErrorContext(ctx, msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

// Authorize applies the ownership rule to a record owned by ownerID.
// There is no bypass: every owned record goes through here.
func (s *BaseService) Authorize(ctx context.Context, actor domain.Actor, ownerID, resource string) error {
	if actor.CanAccess(ownerID) {
		return nil
	}
	s.GetLogger(ctx).WarnContext(ctx, "Access denied",
		slog.String("actor_id", actor.UserID),
		slog.String("owner_id", ownerID),
		slog.String("resource", resource))
	return fmt.Errorf("%w: not allowed to access this %s", apperrors.ErrForbidden, resource)
}

// ownerScope is the owner filter for list operations: admins see every
// record, everyone else only their own.
func ownerScope(actor domain.Actor) string {
	if actor.IsAdmin() {
		return ""
	}
	return actor.UserID
}

// resolveOwner decides who a new record belongs to. Only admins may create
// records on behalf of someone else.
func resolveOwner(actor domain.Actor, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" || requested == actor.UserID {
		return actor.UserID, nil
	}
	if !actor.IsAdmin() {
		return "", fmt.Errorf("%w: cannot create records for another user", apperrors.ErrForbidden)
	}
	return requested, nil
}

// parseTransactionDate accepts RFC 3339 timestamps or plain dates. An empty
// value means now.
func parseTransactionDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", raw)
}

const (
	msgInvalidDate   = "must be a date (YYYY-MM-DD) or an RFC 3339 timestamp"
	msgInvalidAmount = "must be greater than zero"
)

// checkAmount records a field error unless amount is positive.
func checkAmount(amount decimal.Decimal, errs apperrors.FieldErrors) {
	if !amount.IsPositive() {
		errs["amount"] = msgInvalidAmount
	}
}
