package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
	"github.com/google/uuid"
)

var errMediaNotConfigured = errors.New("media host is not configured")

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	media       portssvc.MediaStore
	now         func() time.Time
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithMediaStore enables receipt uploads.
func WithMediaStore(store portssvc.MediaStore) ExpenseServiceOption {
	return func(s *expenseService) {
		s.media = store
	}
}

// WithExpenseClock overrides the time source.
func WithExpenseClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: expenseRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) GetExpenseByID(ctx context.Context, actor domain.Actor, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	if err := s.Authorize(ctx, actor, expense.User.ID, "expense"); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, actor domain.Actor) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx, domain.ExpenseFilter{UserID: ownerScope(actor)})
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) ListExpensesByUser(ctx context.Context, actor domain.Actor, userID string) ([]domain.Expense, error) {
	if err := s.Authorize(ctx, actor, userID, "expense list"); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindExpenses(ctx, domain.ExpenseFilter{UserID: userID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// newExpense validates a create request and builds the record to store.
func (s *expenseService) newExpense(actor domain.Actor, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	owner, err := resolveOwner(actor, req.UserID)
	if err != nil {
		return nil, err
	}

	fieldErrs := apperrors.FieldErrors{}
	status := domain.ExpensePending
	if req.Status != "" {
		parsed, err := domain.ParseExpenseStatus(req.Status)
		if err != nil {
			fieldErrs["status"] = err.Error()
		}
		status = parsed
	}
	checkAmount(req.Amount, fieldErrs)
	now := s.now()
	date, err := parseTransactionDate(req.TransactionDate, now)
	if err != nil {
		fieldErrs["transactionDate"] = msgInvalidDate
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	return &domain.Expense{
		ExpenseID:       uuid.NewString(),
		Title:           strings.TrimSpace(req.Title),
		Category:        domain.Ref{ID: req.CategoryID},
		Subcategory:     domain.Ref{ID: req.SubcategoryID},
		Vendor:          domain.Ref{ID: req.VendorID},
		Account:         domain.Ref{ID: req.AccountID},
		User:            domain.Ref{ID: owner},
		Amount:          req.Amount,
		TransactionDate: date,
		Description:     req.Description,
		Status:          status,
		Comments:        []domain.Comment{},
		Timestamps:      domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, actor domain.Actor, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.newExpense(actor, req)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID))
	return s.reload(ctx, expense.ExpenseID)
}

func (s *expenseService) CreateExpenseWithReceipt(ctx context.Context, actor domain.Actor, req dto.CreateExpenseRequest, receipt dto.ReceiptUpload) (*domain.Expense, error) {
	if s.media == nil {
		return nil, apperrors.NewBadGatewayError("Receipt uploads are not available", errMediaNotConfigured)
	}
	expense, err := s.newExpense(actor, req)
	if err != nil {
		return nil, err
	}

	objectName, err := utils.ReceiptObjectName(receipt.FileName, expense.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to name receipt object: %w", err)
	}
	asset, err := s.media.Upload(ctx, receipt.LocalPath, objectName, receipt.ContentType)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload receipt", slog.String("object", objectName))
		return nil, apperrors.NewBadGatewayError("Failed to upload receipt", err)
	}
	expense.ReceiptURL = asset.URL
	expense.ReceiptObject = asset.ObjectName

	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense after receipt upload, removing uploaded receipt",
			slog.String("object", asset.ObjectName))
		// The request may already be cancelled; the clean-up must still run.
		if delErr := s.media.Delete(context.WithoutCancel(ctx), asset.ObjectName); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove orphaned receipt", slog.String("object", asset.ObjectName))
		}
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	s.LogInfo(ctx, "Expense created with receipt",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("object", asset.ObjectName))
	return s.reload(ctx, expense.ExpenseID)
}

// loadOwned fetches an expense and applies the ownership rule.
func (s *expenseService) loadOwned(ctx context.Context, actor domain.Actor, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	if err := s.Authorize(ctx, actor, expense.User.ID, "expense"); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) reload(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, actor domain.Actor, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if _, err := s.loadOwned(ctx, actor, expenseID); err != nil {
		return nil, err
	}

	fieldErrs := apperrors.FieldErrors{}
	patch := domain.ExpensePatch{
		CategoryID:    nonEmpty(req.CategoryID, "category", fieldErrs),
		SubcategoryID: nonEmpty(req.SubcategoryID, "subcategory", fieldErrs),
		VendorID:      nonEmpty(req.VendorID, "vendor", fieldErrs),
		AccountID:     nonEmpty(req.AccountID, "account", fieldErrs),
		Title:         nonEmpty(req.Title, "title", fieldErrs),
		Description:   req.Description,
	}
	if req.Amount != nil {
		checkAmount(*req.Amount, fieldErrs)
		patch.Amount = req.Amount
	}
	if req.TransactionDate != nil {
		date, err := parseTransactionDate(*req.TransactionDate, s.now())
		if err != nil {
			fieldErrs["transactionDate"] = msgInvalidDate
		}
		patch.TransactionDate = &date
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if err := s.expenseRepo.UpdateExpense(ctx, expenseID, patch, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return s.reload(ctx, expenseID)
}

func (s *expenseService) UpdateExpenseStatus(ctx context.Context, actor domain.Actor, expenseID string, status domain.ExpenseStatus) (*domain.Expense, error) {
	parsed, err := domain.ParseExpenseStatus(string(status))
	if err != nil {
		return nil, apperrors.FieldErrors{"status": err.Error()}
	}
	if _, err := s.loadOwned(ctx, actor, expenseID); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.UpdateExpenseStatus(ctx, expenseID, parsed, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to update expense status", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense status: %w", err)
	}
	s.LogInfo(ctx, "Expense status changed", slog.String("expense_id", expenseID), slog.String("status", string(parsed)))
	return s.reload(ctx, expenseID)
}

func (s *expenseService) AddComment(ctx context.Context, actor domain.Actor, expenseID string, req dto.AddCommentRequest) (*domain.Expense, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperrors.FieldErrors{"text": "comment text is required"}
	}
	if _, err := s.loadOwned(ctx, actor, expenseID); err != nil {
		return nil, err
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = domain.DefaultCommentAuthor
	}
	comment := domain.Comment{Author: author, Text: text, CreatedAt: s.now()}
	if err := s.expenseRepo.AppendExpenseComment(ctx, expenseID, comment); err != nil {
		s.LogError(ctx, err, "Failed to append comment", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return s.reload(ctx, expenseID)
}

func (s *expenseService) DeleteExpense(ctx context.Context, actor domain.Actor, expenseID string) error {
	expense, err := s.loadOwned(ctx, actor, expenseID)
	if err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if expense.ReceiptObject != "" && s.media != nil {
		if err := s.media.Delete(ctx, expense.ReceiptObject); err != nil {
			s.LogError(ctx, err, "Failed to remove receipt of deleted expense", slog.String("object", expense.ReceiptObject))
		}
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// nonEmpty trims an optional patch field and records a field error when it
// is present but blank.
func nonEmpty(v *string, field string, errs apperrors.FieldErrors) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		errs[field] = "must not be empty"
		return nil
	}
	return &trimmed
}
