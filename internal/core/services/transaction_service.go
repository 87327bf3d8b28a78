package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
	portsrepo "github.com/finveld/bank_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finveld/bank_backoffice/internal/core/ports/services"
	"github.com/finveld/bank_backoffice/internal/dto"
	"github.com/finveld/bank_backoffice/internal/middleware"
	"github.com/finveld/bank_backoffice/internal/utils/validation"
)

// transactionService is the transaction processor: it posts deposits and
// withdrawals against accounts while keeping the account balance and the
// transaction log consistent.
//
// Multi-row effects (balance + ledger row) are delegated to the repository's
// atomic scope; this service never performs the two writes independently.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction posts a deposit or withdrawal.
//
// The caller's PreviousTransactionID is checked against the latest
// transaction in the entire store, not just this account's chain. Two
// concurrent creators can read the same latest ID and one of them will then
// post against a stale chain; both quirks come from the system this service
// replaces and are kept as-is.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if account.Status == domain.AccountStatusClosed {
		return nil, &apperrors.AccountClosedError{AccountID: account.AccountID}
	}

	latest, err := s.transactionRepo.FindLatestTransaction(ctx)
	switch {
	case err == nil:
		if req.PreviousTransactionID == nil || *req.PreviousTransactionID != latest.TransactionID {
			return nil, &apperrors.InvalidAccountOperationError{AccountID: account.AccountID}
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// First-ever transaction: no chain token to verify.
	default:
		logger.Error("Failed to fetch latest transaction", slog.String("error", err.Error()))
		return nil, err
	}

	// The caller-supplied timestamp is ignored on create; the action date is
	// always the processing time.
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		ActionDate:    time.Now(),
	}

	if err := validation.ValidateTransaction(txn, account.Balance); err != nil {
		return nil, err
	}

	account.Balance = account.Balance.Add(txn.Amount)
	if err := s.transactionRepo.SaveTransactionWithBalance(ctx, txn, *account); err != nil {
		logger.Error("Failed to persist transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("account_id", account.AccountID), slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// ListTransactions retrieves every transaction, most recent first.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// GetTransactionByID retrieves a specific transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// GetLatestTransactionForAccount retrieves the most recent transaction of
// one account, failing with ErrNotFound when the account has none.
func (s *transactionService) GetLatestTransactionForAccount(ctx context.Context, accountID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindLatestTransactionByAccount(ctx, accountID)
}

// GetAccountOverview retrieves the account together with its transactions,
// most recent first. The account must exist; an empty transaction list is a
// valid result.
func (s *transactionService) GetAccountOverview(ctx context.Context, accountID string) (*domain.AccountOverview, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to list transactions for account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	return &domain.AccountOverview{
		Account:      *account,
		Transactions: txns,
	}, nil
}

// UpdateTransaction administratively rewrites a stored transaction's amount
// and timestamp. Validation runs against the account's current balance; the
// balance itself is deliberately not adjusted to reflect the amount change,
// so no multi-row atomic scope is needed here.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	if account.Status == domain.AccountStatusClosed {
		return nil, &apperrors.AccountClosedError{AccountID: account.AccountID}
	}

	txn.Amount = req.Amount
	txn.ActionDate = req.ActionDate

	if err := validation.ValidateTransaction(*txn, account.Balance); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes a transaction and reverses its effect on the
// account balance: a deposit's amount is subtracted, a withdrawal's added
// back. Both writes happen in one atomic scope.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	if account.Status == domain.AccountStatusClosed {
		return nil, &apperrors.AccountClosedError{AccountID: account.AccountID}
	}

	// Subtracting the signed amount reverses deposits and withdrawals alike.
	account.Balance = account.Balance.Sub(txn.Amount)

	if err := s.transactionRepo.DeleteTransactionWithBalance(ctx, transactionID, *account); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID), slog.String("account_id", account.AccountID))
	return txn, nil
}
