package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account. The only legal
// transition is OPEN -> CLOSED; accounts are never re-opened.
type AccountStatus string

const (
	AccountStatusOpen   AccountStatus = "OPEN"
	AccountStatusClosed AccountStatus = "CLOSED"
)

// ClosureReason records why an account was closed.
type ClosureReason string

const (
	ClosedByOwner ClosureReason = "CLOSED_BY_OWNER"
	ClosedByBank  ClosureReason = "CLOSED_BY_BANK"
)

// Account is a bank account belonging to exactly one owner.
// Balance must never go negative; closure requires a zero balance.
type Account struct {
	AccountID     string          `json:"accountID"`               // Primary key (UUID)
	OwnerID       string          `json:"ownerID"`                 // FK -> account_owners; immutable after creation
	Balance       decimal.Decimal `json:"balance"`                 // NUMERIC(18,4)
	Status        AccountStatus   `json:"status"`                  // OPEN or CLOSED
	ClosureReason *ClosureReason  `json:"closureReason,omitempty"` // Set when Status is CLOSED
	ClosureDate   *time.Time      `json:"closureDate,omitempty"`   // Set when Status is CLOSED
}

// AccountOverview is an account together with its transaction history,
// most recent first.
type AccountOverview struct {
	Account
	Transactions []Transaction `json:"transactions"`
}
