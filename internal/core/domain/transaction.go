package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single deposit or withdrawal against an account.
//
// Amount is signed: positive means deposit, negative means withdrawal.
// The storage layer decomposes it into an unsigned magnitude plus an action
// flag; that split is invisible here and must round-trip losslessly.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	AccountID     string          `json:"accountID"`     // FK -> accounts; immutable after creation
	Amount        decimal.Decimal `json:"amount"`        // Signed, NUMERIC(18,4)
	ActionDate    time.Time       `json:"actionDate"`
}

// IsDeposit reports whether the transaction adds funds to its account.
// A zero amount is treated as a withdrawal, matching the stored decomposition.
func (t Transaction) IsDeposit() bool {
	return t.Amount.IsPositive()
}
