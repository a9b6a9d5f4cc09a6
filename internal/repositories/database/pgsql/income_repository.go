package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxIncomeRepository struct {
	BaseRepository
}

func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

const selectIncomeColumns = `
	SELECT i.income_id, i.title,
	       i.account_id, COALESCE(a.title, ''),
	       i.user_id, COALESCE(u.first_name || ' ' || u.last_name, ''), COALESCE(u.email, ''),
	       i.amount, i.transaction_date, i.description, i.status, i.created_at, i.updated_at
	FROM incomes i
	LEFT JOIN accounts a ON a.account_id = i.account_id
	LEFT JOIN users u ON u.user_id = i.user_id`

func scanIncome(row pgx.Row) (*domain.Income, error) {
	var (
		i      domain.Income
		status string
	)
	err := row.Scan(
		&i.IncomeID,
		&i.Title,
		&i.Account.ID, &i.Account.Title,
		&i.User.ID, &i.User.Name, &i.User.Email,
		&i.Amount,
		&i.TransactionDate,
		&i.Description,
		&status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	i.Status = domain.IncomeStatus(status)
	return &i, nil
}

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	query := `
		INSERT INTO incomes (income_id, title, account_id, user_id, amount, transaction_date, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		income.IncomeID,
		income.Title,
		income.Account.ID,
		income.User.ID,
		income.Amount,
		income.TransactionDate,
		income.Description,
		string(income.Status),
		income.CreatedAt,
		income.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "income")
	}
	return nil
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	if !isUUID(incomeID) {
		return nil, apperrors.ErrNotFound
	}
	income, err := scanIncome(r.Pool.QueryRow(ctx, selectIncomeColumns+` WHERE i.income_id = $1;`, incomeID))
	if err != nil {
		return nil, translateReadError(err, "income", incomeID)
	}
	return income, nil
}

func (r *PgxIncomeRepository) FindIncomes(ctx context.Context, userID string) ([]domain.Income, error) {
	query := selectIncomeColumns
	var args []any
	if userID != "" {
		query += ` WHERE i.user_id::text = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY i.transaction_date DESC, i.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		income, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, *income)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", rows.Err())
	}
	return incomes, nil
}

// SumIncome returns zero when userID has no matching incomes.
func (r *PgxIncomeRepository) SumIncome(ctx context.Context, userID string, status domain.IncomeStatus) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE user_id::text = $1 AND status = $2;`,
		userID, string(status)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum incomes for user %s: %w", userID, err)
	}
	return total, nil
}

func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, incomeID string, patch domain.IncomePatch, updatedAt time.Time) error {
	if !isUUID(incomeID) {
		return apperrors.ErrNotFound
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var locked string
	err = tx.QueryRow(ctx, `SELECT income_id FROM incomes WHERE income_id = $1 FOR UPDATE;`, incomeID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock income %s: %w", incomeID, err)
	}

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	query := `
		UPDATE incomes SET
			title            = COALESCE($1::text, title),
			account_id       = COALESCE($2::uuid, account_id),
			amount           = COALESCE($3::numeric, amount),
			transaction_date = COALESCE($4::timestamptz, transaction_date),
			description      = COALESCE($5::text, description),
			status           = COALESCE($6::text, status),
			updated_at       = $7
		WHERE income_id = $8;
	`
	_, err = tx.Exec(ctx, query,
		patch.Title,
		patch.AccountID,
		patch.Amount,
		patch.TransactionDate,
		patch.Description,
		status,
		updatedAt,
		incomeID,
	)
	if err != nil {
		return translateWriteError(err, "income")
	}
	return r.Commit(ctx, tx)
}

func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	if !isUUID(incomeID) {
		return apperrors.ErrNotFound
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM incomes WHERE income_id = $1;`, incomeID)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income %s: %w", incomeID, apperrors.ErrNotFound)
	}
	return nil
}
