package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
	portsrepo "github.com/finveld/bank_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finveld/bank_backoffice/internal/core/ports/services"
	"github.com/finveld/bank_backoffice/internal/dto"
	"github.com/finveld/bank_backoffice/internal/middleware"
	"github.com/finveld/bank_backoffice/internal/utils/validation"
)

// ownerService manages account owners. Balance checks before deletion are
// delegated to the account service.
type ownerService struct {
	ownerRepo  portsrepo.OwnerRepositoryFacade
	accountSvc portssvc.AccountReaderSvc
}

// NewOwnerService creates a new owner service.
func NewOwnerService(ownerRepo portsrepo.OwnerRepositoryFacade, accountSvc portssvc.AccountReaderSvc) portssvc.OwnerSvcFacade {
	return &ownerService{
		ownerRepo:  ownerRepo,
		accountSvc: accountSvc,
	}
}

var _ portssvc.OwnerSvcFacade = (*ownerService)(nil)

// CreateOwner registers a new account owner with a generated identifier.
func (s *ownerService) CreateOwner(ctx context.Context, req dto.CreateOwnerRequest) (*domain.AccountOwner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	owner := domain.AccountOwner{
		OwnerID: uuid.NewString(),
		Name:    req.Name,
	}

	if err := validation.ValidateOwner(owner); err != nil {
		return nil, err
	}

	if err := s.ownerRepo.SaveOwner(ctx, owner); err != nil {
		logger.Error("Failed to save owner in repository", slog.String("error", err.Error()), slog.String("owner_id", owner.OwnerID))
		return nil, err
	}

	logger.Info("Owner created successfully", slog.String("owner_id", owner.OwnerID))
	return &owner, nil
}

// ListOwners retrieves every account owner.
func (s *ownerService) ListOwners(ctx context.Context) ([]domain.AccountOwner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	owners, err := s.ownerRepo.ListOwners(ctx)
	if err != nil {
		logger.Error("Failed to list owners from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if owners == nil {
		return []domain.AccountOwner{}, nil
	}
	return owners, nil
}

// GetOwnerByID retrieves a specific account owner.
func (s *ownerService) GetOwnerByID(ctx context.Context, ownerID string) (*domain.AccountOwner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	owner, err := s.ownerRepo.FindOwnerByID(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find owner by ID", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		}
		return nil, err
	}
	return owner, nil
}

// UpdateOwner renames an existing account owner.
func (s *ownerService) UpdateOwner(ctx context.Context, ownerID string, req dto.UpdateOwnerRequest) (*domain.AccountOwner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	owner, err := s.ownerRepo.FindOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	owner.Name = req.Name
	if err := validation.ValidateOwner(*owner); err != nil {
		return nil, err
	}

	if err := s.ownerRepo.UpdateOwner(ctx, *owner); err != nil {
		logger.Error("Failed to update owner in repository", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, err
	}

	logger.Info("Owner updated successfully", slog.String("owner_id", ownerID))
	return owner, nil
}

// DeleteOwner removes an account owner. Deletion is blocked while any
// account in the store carries a nonzero balance; the check deliberately
// spans the whole store, not just this owner's accounts, reproducing the
// behaviour of the system this service replaces.
func (s *ownerService) DeleteOwner(ctx context.Context, ownerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.ownerRepo.FindOwnerByID(ctx, ownerID); err != nil {
		return err
	}

	fundedAccounts, err := s.accountSvc.FindAccountsWithNonZeroBalance(ctx)
	if err != nil {
		logger.Error("Failed to scan accounts before owner deletion", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return err
	}
	if len(fundedAccounts) > 0 {
		accountIDs := make([]string, len(fundedAccounts))
		for i, acc := range fundedAccounts {
			accountIDs[i] = acc.AccountID
		}
		return &apperrors.BalanceNotZeroError{AccountIDs: accountIDs}
	}

	if err := s.ownerRepo.DeleteOwner(ctx, ownerID); err != nil {
		logger.Error("Failed to delete owner in repository", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return err
	}

	logger.Info("Owner deleted successfully", slog.String("owner_id", ownerID))
	return nil
}
