package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus mirrors domain.AccountStatus at the storage layer.
type AccountStatus string

const (
	AccountStatusOpen   AccountStatus = "OPEN"
	AccountStatusClosed AccountStatus = "CLOSED"
)

// Account is the persisted row shape for a bank account.
// ClosureReason and ClosureDate are NULL while the account is open.
type Account struct {
	AccountID     string          `db:"account_id"`
	OwnerID       string          `db:"owner_id"`
	Balance       decimal.Decimal `db:"balance"`
	Status        AccountStatus   `db:"status"`
	ClosureReason *string         `db:"closure_reason"`
	ClosureDate   *time.Time      `db:"closure_date"`
}
