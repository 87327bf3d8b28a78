package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finveld/bank_backoffice/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	OwnerID string `json:"ownerID" binding:"required"`
}

// UpdateAccountRequest is the administrative full replacement of an
// account's mutable fields. It bypasses the transaction-linkage rules of
// normal deposits and withdrawals.
type UpdateAccountRequest struct {
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status" binding:"required,oneof=OPEN CLOSED"`
	ClosureReason *string         `json:"closureReason"`
	ClosureDate   *time.Time      `json:"closureDate"`
}

// CloseAccountRequest carries the reason an account is being closed.
type CloseAccountRequest struct {
	Reason string `json:"reason" binding:"required,oneof=CLOSED_BY_OWNER CLOSED_BY_BANK"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	OwnerID       string          `json:"ownerID"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	ClosureReason *string         `json:"closureReason,omitempty"`
	ClosureDate   *time.Time      `json:"closureDate,omitempty"`
}

// AccountOverviewResponse is an account together with its transactions,
// most recent first.
type AccountOverviewResponse struct {
	AccountResponse
	Transactions []TransactionResponse `json:"transactions"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	var reason *string
	if acc.ClosureReason != nil {
		r := string(*acc.ClosureReason)
		reason = &r
	}
	return AccountResponse{
		AccountID:     acc.AccountID,
		OwnerID:       acc.OwnerID,
		Balance:       acc.Balance,
		Status:        string(acc.Status),
		ClosureReason: reason,
		ClosureDate:   acc.ClosureDate,
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToAccountOverviewResponse converts a domain overview aggregate to its
// response DTO.
func ToAccountOverviewResponse(ov *domain.AccountOverview) AccountOverviewResponse {
	return AccountOverviewResponse{
		AccountResponse: ToAccountResponse(&ov.Account),
		Transactions:    ToListTransactionResponse(ov.Transactions),
	}
}
