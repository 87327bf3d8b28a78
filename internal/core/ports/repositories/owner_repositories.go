package repositories

import (
	"context"

	"github.com/finveld/bank_backoffice/internal/core/domain"
)

// OwnerReader defines read operations for account owner data.
type OwnerReader interface {
	// FindOwnerByID retrieves a specific owner by its unique identifier.
	FindOwnerByID(ctx context.Context, ownerID string) (*domain.AccountOwner, error)

	// ListOwners retrieves every account owner in the store.
	ListOwners(ctx context.Context) ([]domain.AccountOwner, error)
}

// OwnerWriter defines write operations for account owner data.
type OwnerWriter interface {
	// SaveOwner persists a new account owner.
	SaveOwner(ctx context.Context, owner domain.AccountOwner) error

	// UpdateOwner updates an existing owner's details.
	UpdateOwner(ctx context.Context, owner domain.AccountOwner) error

	// DeleteOwner removes an owner from the store.
	DeleteOwner(ctx context.Context, ownerID string) error
}

// OwnerRepositoryFacade combines all owner-related repository interfaces.
type OwnerRepositoryFacade interface {
	OwnerReader
	OwnerWriter
}
