package repositories

import (
	"context"

	"github.com/finveld/bank_backoffice/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account in the store.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByOwner retrieves the accounts belonging to one owner.
	// An owner without accounts yields an empty, non-error result.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)

	// ListAccountsWithNonZeroBalance retrieves every account in the store
	// whose balance is not exactly zero.
	ListAccountsWithNonZeroBalance(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount replaces the mutable fields of an existing account
	// (balance, status, closure reason, closure date).
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account from the store.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
