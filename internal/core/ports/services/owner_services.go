package services

import (
	"context"

	"github.com/finveld/bank_backoffice/internal/core/domain"
	"github.com/finveld/bank_backoffice/internal/dto"
)

// OwnerReaderSvc defines read operations for account owners.
type OwnerReaderSvc interface {
	// GetOwnerByID retrieves a specific owner by its unique identifier.
	GetOwnerByID(ctx context.Context, ownerID string) (*domain.AccountOwner, error)

	// ListOwners retrieves every account owner.
	ListOwners(ctx context.Context) ([]domain.AccountOwner, error)
}

// OwnerWriterSvc defines write operations for account owners.
type OwnerWriterSvc interface {
	// CreateOwner registers a new owner with a generated identifier.
	CreateOwner(ctx context.Context, req dto.CreateOwnerRequest) (*domain.AccountOwner, error)

	// UpdateOwner renames an existing owner.
	UpdateOwner(ctx context.Context, ownerID string, req dto.UpdateOwnerRequest) (*domain.AccountOwner, error)

	// DeleteOwner removes an owner. Deletion is blocked while any account in
	// the store carries a nonzero balance.
	DeleteOwner(ctx context.Context, ownerID string) error
}

// OwnerSvcFacade combines all owner-related service interfaces.
type OwnerSvcFacade interface {
	OwnerReaderSvc
	OwnerWriterSvc
}
