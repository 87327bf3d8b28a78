package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finveld/bank_backoffice/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to post a deposit or
// withdrawal. Amount is signed: positive deposits, negative withdraws.
//
// PreviousTransactionID is the chain token: the ID of what the caller
// believes is the latest transaction in the ledger. It is required once the
// ledger contains at least one transaction.
type CreateTransactionRequest struct {
	AccountID             string          `json:"accountID" binding:"required"`
	OwnerID               string          `json:"ownerID"`
	Amount                decimal.Decimal `json:"amount" binding:"required"`
	PreviousTransactionID *string         `json:"previousTransactionID"`
}

// UpdateTransactionRequest rewrites the amount and timestamp of a stored
// transaction. The owning account's balance is deliberately left untouched.
type UpdateTransactionRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	ActionDate time.Time       `json:"actionDate" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction. Amount is
// the signed public representation.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	ActionDate    time.Time       `json:"actionDate"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		ActionDate:    txn.ActionDate,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
