package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const selectAccountColumns = `SELECT account_id, title, description, amount, user_id, created_at, updated_at FROM accounts`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.AccountID, &a.Title, &a.Description, &a.Amount, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO accounts (account_id, title, description, amount, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		account.AccountID,
		account.Title,
		account.Description,
		account.Amount,
		account.UserID,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "account")
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if !isUUID(accountID) {
		return nil, apperrors.ErrNotFound
	}
	account, err := scanAccount(r.Pool.QueryRow(ctx, selectAccountColumns+` WHERE account_id = $1;`, accountID))
	if err != nil {
		return nil, translateReadError(err, "account", accountID)
	}
	return account, nil
}

func (r *PgxAccountRepository) FindAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := selectAccountColumns
	var args []any
	if userID != "" {
		query += ` WHERE user_id::text = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY title;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}
