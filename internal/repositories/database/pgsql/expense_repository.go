package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// References are LEFT JOINed so a dangling id still yields the expense with
// an empty display field.
const selectExpenseColumns = `
	SELECT e.expense_id, e.title,
	       e.category_id, COALESCE(c.name, ''),
	       e.subcategory_id, COALESCE(s.name, ''),
	       e.vendor_id, COALESCE(v.title, ''),
	       e.account_id, COALESCE(a.title, ''),
	       e.user_id, COALESCE(u.first_name || ' ' || u.last_name, ''), COALESCE(u.email, ''),
	       e.amount, e.transaction_date, e.description, e.status,
	       e.receipt_url, e.receipt_object, e.comments, e.created_at, e.updated_at
	FROM expenses e
	LEFT JOIN categories c ON c.category_id = e.category_id
	LEFT JOIN subcategories s ON s.subcategory_id = e.subcategory_id
	LEFT JOIN vendors v ON v.vendor_id = e.vendor_id
	LEFT JOIN accounts a ON a.account_id = e.account_id
	LEFT JOIN users u ON u.user_id = e.user_id`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		e        domain.Expense
		status   string
		comments []byte
	)
	err := row.Scan(
		&e.ExpenseID,
		&e.Title,
		&e.Category.ID, &e.Category.Name,
		&e.Subcategory.ID, &e.Subcategory.Name,
		&e.Vendor.ID, &e.Vendor.Title,
		&e.Account.ID, &e.Account.Title,
		&e.User.ID, &e.User.Name, &e.User.Email,
		&e.Amount,
		&e.TransactionDate,
		&e.Description,
		&status,
		&e.ReceiptURL,
		&e.ReceiptObject,
		&comments,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Status = domain.ExpenseStatus(status)
	e.Comments = []domain.Comment{}
	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &e.Comments); err != nil {
			return nil, fmt.Errorf("failed to decode comments of expense %s: %w", e.ExpenseID, err)
		}
	}
	return &e, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	comments := expense.Comments
	if comments == nil {
		comments = []domain.Comment{}
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("failed to encode comments: %w", err)
	}

	query := `
		INSERT INTO expenses (
			expense_id, title, category_id, subcategory_id, vendor_id, account_id, user_id,
			amount, transaction_date, description, status, receipt_url, receipt_object, comments,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14::jsonb, $15, $16);
	`
	_, err = r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.Title,
		expense.Category.ID,
		expense.Subcategory.ID,
		expense.Vendor.ID,
		expense.Account.ID,
		expense.User.ID,
		expense.Amount,
		expense.TransactionDate,
		expense.Description,
		string(expense.Status),
		expense.ReceiptURL,
		expense.ReceiptObject,
		string(commentsJSON),
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "expense")
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if !isUUID(expenseID) {
		return nil, apperrors.ErrNotFound
	}
	expense, err := scanExpense(r.Pool.QueryRow(ctx, selectExpenseColumns+` WHERE e.expense_id = $1;`, expenseID))
	if err != nil {
		return nil, translateReadError(err, "expense", expenseID)
	}
	return expense, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	query := selectExpenseColumns
	var args []any
	if filter.UserID != "" {
		if isUUID(filter.UserID) {
			query += ` WHERE e.user_id = $1`
		} else {
			query += ` WHERE e.user_id::text = $1`
		}
		args = append(args, filter.UserID)
	}
	query += ` ORDER BY e.transaction_date DESC, e.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return expenses, nil
}

// UpdateExpense applies the non-nil patch fields. Status and comments are
// never touched here.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expenseID string, patch domain.ExpensePatch, updatedAt time.Time) error {
	if !isUUID(expenseID) {
		return apperrors.ErrNotFound
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var locked string
	err = tx.QueryRow(ctx, `SELECT expense_id FROM expenses WHERE expense_id = $1 FOR UPDATE;`, expenseID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock expense %s: %w", expenseID, err)
	}

	query := `
		UPDATE expenses SET
			title            = COALESCE($1::text, title),
			category_id      = COALESCE($2::uuid, category_id),
			subcategory_id   = COALESCE($3::uuid, subcategory_id),
			vendor_id        = COALESCE($4::uuid, vendor_id),
			account_id       = COALESCE($5::uuid, account_id),
			amount           = COALESCE($6::numeric, amount),
			transaction_date = COALESCE($7::timestamptz, transaction_date),
			description      = COALESCE($8::text, description),
			updated_at       = $9
		WHERE expense_id = $10;
	`
	_, err = tx.Exec(ctx, query,
		patch.Title,
		patch.CategoryID,
		patch.SubcategoryID,
		patch.VendorID,
		patch.AccountID,
		patch.Amount,
		patch.TransactionDate,
		patch.Description,
		updatedAt,
		expenseID,
	)
	if err != nil {
		return translateWriteError(err, "expense")
	}
	return r.Commit(ctx, tx)
}

func (r *PgxExpenseRepository) UpdateExpenseStatus(ctx context.Context, expenseID string, status domain.ExpenseStatus, updatedAt time.Time) error {
	if !isUUID(expenseID) {
		return apperrors.ErrNotFound
	}
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE expenses SET status = $1, updated_at = $2 WHERE expense_id = $3;`,
		string(status), updatedAt, expenseID)
	if err != nil {
		return translateWriteError(err, "expense")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}

// AppendExpenseComment appends atomically; concurrent appends never lose
// each other's comments.
func (r *PgxExpenseRepository) AppendExpenseComment(ctx context.Context, expenseID string, comment domain.Comment) error {
	if !isUUID(expenseID) {
		return apperrors.ErrNotFound
	}
	commentJSON, err := json.Marshal(comment)
	if err != nil {
		return fmt.Errorf("failed to encode comment: %w", err)
	}
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE expenses SET comments = comments || jsonb_build_array($1::jsonb) WHERE expense_id = $2;`,
		string(commentJSON), expenseID)
	if err != nil {
		return fmt.Errorf("failed to append comment to expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	if !isUUID(expenseID) {
		return apperrors.ErrNotFound
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}
