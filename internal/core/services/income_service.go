package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepositoryFacade
	now        func() time.Time
}

func NewIncomeService(incomeRepo portsrepo.IncomeRepositoryFacade) portssvc.IncomeSvcFacade {
	return &incomeService{
		incomeRepo: incomeRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

func (s *incomeService) GetIncomeByID(ctx context.Context, actor domain.Actor, incomeID string) (*domain.Income, error) {
	return s.loadOwned(ctx, actor, incomeID)
}

func (s *incomeService) ListIncomes(ctx context.Context, actor domain.Actor) ([]domain.Income, error) {
	incomes, err := s.incomeRepo.FindIncomes(ctx, ownerScope(actor))
	if err != nil {
		s.LogError(ctx, err, "Failed to list incomes")
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

// GetTotalIncome counts completed incomes only.
func (s *incomeService) GetTotalIncome(ctx context.Context, actor domain.Actor, userID string) (decimal.Decimal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = actor.UserID
	}
	if err := s.Authorize(ctx, actor, userID, "income total"); err != nil {
		return decimal.Zero, err
	}
	total, err := s.incomeRepo.SumIncome(ctx, userID, domain.IncomeCompleted)
	if err != nil {
		s.LogError(ctx, err, "Failed to total incomes", slog.String("user_id", userID))
		return decimal.Zero, fmt.Errorf("failed to total incomes: %w", err)
	}
	return total, nil
}

func (s *incomeService) CreateIncome(ctx context.Context, actor domain.Actor, req dto.CreateIncomeRequest) (*domain.Income, error) {
	owner, err := resolveOwner(actor, req.UserID)
	if err != nil {
		return nil, err
	}

	fieldErrs := apperrors.FieldErrors{}
	status := domain.IncomePending
	if req.Status != "" {
		parsed, err := domain.ParseIncomeStatus(req.Status)
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

	income := domain.Income{
		IncomeID:        uuid.NewString(),
		Title:           strings.TrimSpace(req.Title),
		Account:         domain.Ref{ID: req.AccountID},
		User:            domain.Ref{ID: owner},
		Amount:          req.Amount,
		TransactionDate: date,
		Description:     req.Description,
		Status:          status,
		Timestamps:      domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to save income")
		return nil, fmt.Errorf("failed to create income: %w", err)
	}
	s.LogInfo(ctx, "Income created", slog.String("income_id", income.IncomeID))
	return s.reload(ctx, income.IncomeID)
}

func (s *incomeService) UpdateIncome(ctx context.Context, actor domain.Actor, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	if _, err := s.loadOwned(ctx, actor, incomeID); err != nil {
		return nil, err
	}

	fieldErrs := apperrors.FieldErrors{}
	patch := domain.IncomePatch{
		Title:       nonEmpty(req.Title, "title", fieldErrs),
		AccountID:   nonEmpty(req.AccountID, "account", fieldErrs),
		Description: req.Description,
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
	if req.Status != nil {
		parsed, err := domain.ParseIncomeStatus(string(*req.Status))
		if err != nil {
			fieldErrs["status"] = err.Error()
		}
		patch.Status = &parsed
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if err := s.incomeRepo.UpdateIncome(ctx, incomeID, patch, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to update income", slog.String("income_id", incomeID))
		return nil, fmt.Errorf("failed to update income: %w", err)
	}
	return s.reload(ctx, incomeID)
}

func (s *incomeService) DeleteIncome(ctx context.Context, actor domain.Actor, incomeID string) error {
	if _, err := s.loadOwned(ctx, actor, incomeID); err != nil {
		return err
	}
	if err := s.incomeRepo.DeleteIncome(ctx, incomeID); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	s.LogInfo(ctx, "Income deleted", slog.String("income_id", incomeID))
	return nil
}

func (s *incomeService) loadOwned(ctx context.Context, actor domain.Actor, incomeID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get income %s: %w", incomeID, err)
	}
	if err := s.Authorize(ctx, actor, income.User.ID, "income"); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *incomeService) reload(ctx context.Context, incomeID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload income %s: %w", incomeID, err)
	}
	return income, nil
}
