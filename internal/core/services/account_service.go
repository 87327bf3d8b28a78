package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
	portsrepo "github.com/finveld/bank_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finveld/bank_backoffice/internal/core/ports/services"
	"github.com/finveld/bank_backoffice/internal/dto"
	"github.com/finveld/bank_backoffice/internal/middleware"
	"github.com/finveld/bank_backoffice/internal/utils/validation"
)

// accountService manages the account lifecycle: creation, administrative
// updates, deletion and closure.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount opens a new account for the owner: balance zero, status
// OPEN, generated identifier.
func (s *accountService) CreateAccount(ctx context.Context, ownerID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account := domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   ownerID,
		Balance:   decimal.Zero,
		Status:    domain.AccountStatusOpen,
	}

	if err := validation.ValidateAccount(account); err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID), slog.String("owner_id", ownerID))
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves every account.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// ListAccountsByOwner retrieves the accounts of one owner. An owner without
// accounts yields an empty list, not an error.
func (s *accountService) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to list accounts for owner", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// FindAccountsWithNonZeroBalance retrieves every account in the store whose
// balance is not exactly zero.
func (s *accountService) FindAccountsWithNonZeroBalance(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccountsWithNonZeroBalance(ctx)
}

// UpdateAccount administratively replaces the account's mutable fields:
// balance, status, closure reason and closure date. It bypasses the
// transaction-linkage rules of normal deposits and withdrawals.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.Balance = req.Balance
	account.Status = domain.AccountStatus(req.Status)
	if req.ClosureReason != nil {
		reason := domain.ClosureReason(*req.ClosureReason)
		account.ClosureReason = &reason
	} else {
		account.ClosureReason = nil
	}
	account.ClosureDate = req.ClosureDate

	if err := validation.ValidateAccount(*account); err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// DeleteAccount removes an account. Any nonzero balance, positive or
// negative, blocks deletion. Note the asymmetry with CloseAccount, which
// only blocks on positive balances.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	if !account.Balance.IsZero() {
		return &apperrors.BalanceNotZeroError{AccountIDs: []string{account.AccountID}}
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Error("Failed to delete account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return err
	}

	logger.Info("Account deleted successfully", slog.String("account_id", accountID))
	return nil
}

// CloseAccount marks the account CLOSED with the supplied reason and the
// current time. Only a positive balance blocks closure.
func (s *accountService) CloseAccount(ctx context.Context, accountID string, reason domain.ClosureReason) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account.Balance.GreaterThan(decimal.Zero) {
		return nil, &apperrors.BalanceNotZeroError{AccountIDs: []string{account.AccountID}}
	}

	now := time.Now()
	account.Status = domain.AccountStatusClosed
	account.ClosureReason = &reason
	account.ClosureDate = &now

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to close account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account closed", slog.String("account_id", accountID), slog.String("reason", string(reason)))
	return account, nil
}
