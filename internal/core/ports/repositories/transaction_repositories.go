package repositories

import (
	"context"

	"github.com/finveld/bank_backoffice/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every transaction in the store, ordered by
	// action date descending.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves the transactions of one account,
	// ordered by action date descending.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// FindLatestTransaction retrieves the most recently dated transaction in
	// the entire store, or ErrNotFound when the ledger is empty.
	FindLatestTransaction(ctx context.Context) (*domain.Transaction, error)

	// FindLatestTransactionByAccount retrieves the most recently dated
	// transaction of one account, or ErrNotFound when it has none.
	FindLatestTransactionByAccount(ctx context.Context, accountID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data. The
// *WithBalance methods are atomic scopes: the account row and the
// transaction row commit together or not at all.
type TransactionWriter interface {
	// SaveTransactionWithBalance inserts the transaction and persists the
	// account (carrying its already-adjusted balance) in one atomic scope.
	SaveTransactionWithBalance(ctx context.Context, txn domain.Transaction, account domain.Account) error

	// UpdateTransaction rewrites the stored direction, magnitude and
	// timestamp of a transaction. Balances are not touched.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransactionWithBalance removes the transaction and persists the
	// account (carrying its reversed balance) in one atomic scope.
	DeleteTransactionWithBalance(ctx context.Context, transactionID string, account domain.Account) error
}

// TransactionRepositoryFacade combines all transaction-related repository
// interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
