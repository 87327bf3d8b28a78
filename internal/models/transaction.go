package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionAction is the stored direction flag of a transaction.
type TransactionAction string

const (
	ActionDeposit    TransactionAction = "DEPOSIT"
	ActionWithdrawal TransactionAction = "WITHDRAWAL"
)

// Transaction is the persisted row shape for a ledger transaction.
// Amount is an unsigned magnitude; the sign of the public representation
// is carried by Action.
type Transaction struct {
	TransactionID string            `db:"transaction_id"`
	AccountID     string            `db:"account_id"`
	Amount        decimal.Decimal   `db:"amount"`
	Action        TransactionAction `db:"action"`
	ActionDate    time.Time         `db:"action_date"`
}
