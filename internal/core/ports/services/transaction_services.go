package services

import (
	"context"

	"github.com/finveld/bank_backoffice/internal/core/domain"
	"github.com/finveld/bank_backoffice/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every transaction, most recent first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// GetLatestTransactionForAccount retrieves the most recent transaction of
	// one account, or ErrNotFound when the account has none.
	GetLatestTransactionForAccount(ctx context.Context, accountID string) (*domain.Transaction, error)

	// GetAccountOverview retrieves an account together with its transactions,
	// most recent first.
	GetAccountOverview(ctx context.Context, accountID string) (*domain.AccountOverview, error)
}

// TransactionWriterSvc defines mutating operations for transactions.
type TransactionWriterSvc interface {
	// CreateTransaction posts a deposit or withdrawal after validating the
	// previous-transaction chain token and the prospective balance.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction administratively rewrites a stored transaction's
	// amount and timestamp without adjusting the account balance.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its effect on the
	// account balance. Returns the deleted transaction.
	DeleteTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
