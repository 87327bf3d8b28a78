package services

import (
	"context"

	"github.com/finveld/bank_backoffice/internal/core/domain"
	"github.com/finveld/bank_backoffice/internal/dto"
)

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByOwner retrieves the accounts of one owner; an empty list
	// is a valid result.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)

	// FindAccountsWithNonZeroBalance retrieves every account in the store
	// whose balance is not exactly zero. Used by owner deletion.
	FindAccountsWithNonZeroBalance(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines lifecycle operations for accounts.
type AccountWriterSvc interface {
	// CreateAccount opens a new account for the owner with balance zero and
	// status OPEN.
	CreateAccount(ctx context.Context, ownerID string) (*domain.Account, error)

	// UpdateAccount administratively replaces the account's mutable fields.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account; blocked while its balance is nonzero.
	DeleteAccount(ctx context.Context, accountID string) error

	// CloseAccount marks the account CLOSED with the supplied reason;
	// blocked while its balance is positive.
	CloseAccount(ctx context.Context, accountID string, reason domain.ClosureReason) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
