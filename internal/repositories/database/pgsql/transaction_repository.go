package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
	portsrepo "github.com/finveld/bank_backoffice/internal/core/ports/repositories"
	"github.com/finveld/bank_backoffice/internal/models"
	"github.com/finveld/bank_backoffice/internal/utils/mapping"
)

const transactionColumns = "transaction_id, account_id, amount, action, action_date"

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.TransactionID, &m.AccountID, &m.Amount, &m.Action, &m.ActionDate)
	if err != nil {
		return nil, err
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.AccountID, &m.Amount, &m.Action, &m.ActionDate); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// ListTransactions retrieves every transaction, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.queryTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		ORDER BY action_date DESC;
	`)
}

// ListTransactionsByAccount retrieves one account's transactions, newest
// first.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return r.queryTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE account_id = $1
		ORDER BY action_date DESC;
	`, accountID)
}

// FindLatestTransaction retrieves the most recently dated transaction in
// the whole store.
func (r *PgxTransactionRepository) FindLatestTransaction(ctx context.Context) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY action_date DESC
		LIMIT 1;
	`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no transactions in ledger", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find latest transaction: %w", err)
	}
	return txn, nil
}

// FindLatestTransactionByAccount retrieves the most recently dated
// transaction of one account.
func (r *PgxTransactionRepository) FindLatestTransactionByAccount(ctx context.Context, accountID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY action_date DESC
		LIMIT 1;
	`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no transactions for account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find latest transaction for account %s: %w", accountID, err)
	}
	return txn, nil
}

// SaveTransactionWithBalance persists the adjusted account and the new
// transaction row in one database transaction. Either both writes commit or
// neither does; the triggering error is returned unchanged.
func (r *PgxTransactionRepository) SaveTransactionWithBalance(ctx context.Context, txn domain.Transaction, account domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accModel := mapping.ToModelAccount(account)
	_, err = tx.Exec(ctx, `
		UPDATE accounts
		SET balance = $2
		WHERE account_id = $1;
	`, accModel.AccountID, accModel.Balance)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accModel.AccountID, err)
	}

	txnModel := mapping.ToModelTransaction(txn)
	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5);
	`, txnModel.TransactionID, txnModel.AccountID, txnModel.Amount, txnModel.Action, txnModel.ActionDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txnModel.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", txnModel.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction rewrites the stored direction, magnitude and timestamp
// of a transaction. Balances are untouched, so no multi-row scope is needed.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET amount = $2, action = $3, action_date = $4
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.TransactionID, m.Amount, m.Action, m.ActionDate)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}
	return nil
}

// DeleteTransactionWithBalance persists the reversed account balance and
// removes the transaction row in one database transaction.
func (r *PgxTransactionRepository) DeleteTransactionWithBalance(ctx context.Context, transactionID string, account domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accModel := mapping.ToModelAccount(account)
	_, err = tx.Exec(ctx, `
		UPDATE accounts
		SET balance = $2
		WHERE account_id = $1;
	`, accModel.AccountID, accModel.Balance)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", accModel.AccountID, err)
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM transactions
		WHERE transaction_id = $1;
	`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}

	return r.Commit(ctx, tx)
}
