// Package validation holds the stateless rule checks applied to entities
// before they are persisted. Each primitive returns an ordered list of
// human-readable violations; an empty list means the value is valid.
package validation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
)

// ValidateID fails when the identifier is empty, not a UUID, or the nil UUID.
func ValidateID(id string) []string {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed == uuid.Nil {
		return []string{"id is empty or default value"}
	}
	return nil
}

// ValidateStringLength fails when len(text) >= maxLength. The boundary is
// strict-or-equal: a string exactly at maxLength is rejected.
func ValidateStringLength(text string, maxLength int, field string) []string {
	if len(text) >= maxLength {
		return []string{fmt.Sprintf("%s is too long", field)}
	}
	return nil
}

// ValidateNotNegative fails when value < 0.
func ValidateNotNegative(value decimal.Decimal, field string) []string {
	if value.IsNegative() {
		return []string{fmt.Sprintf("%s cannot be negative", field)}
	}
	return nil
}

// ValidateNotFuture fails when ts is after the current time.
func ValidateNotFuture(ts time.Time, field string) []string {
	if ts.After(time.Now()) {
		return []string{fmt.Sprintf("%s cannot be in the future", field)}
	}
	return nil
}

// ValidateOwner aggregates every violation on an account owner into a single
// NotValidError, or returns nil when the owner is valid.
func ValidateOwner(owner domain.AccountOwner) error {
	var violations []string
	violations = append(violations, ValidateID(owner.OwnerID)...)
	violations = append(violations, ValidateStringLength(owner.Name, domain.OwnerNameMaxLength, "Name")...)

	if len(violations) > 0 {
		return apperrors.NewNotValid(violations)
	}
	return nil
}

// ValidateAccount aggregates every violation on an account into a single
// NotValidError, or returns nil when the account is valid.
func ValidateAccount(account domain.Account) error {
	var violations []string
	violations = append(violations, ValidateID(account.AccountID)...)
	violations = append(violations, ValidateNotNegative(account.Balance, "Balance")...)

	if len(violations) > 0 {
		return apperrors.NewNotValid(violations)
	}
	return nil
}

// ValidateTransaction aggregates every violation on a transaction into a
// single NotValidError, or returns nil when the transaction is valid.
//
// The prospective balance is currentBalance plus the signed amount; it must
// not be negative. The account balance itself is not modified here.
func ValidateTransaction(txn domain.Transaction, currentBalance decimal.Decimal) error {
	var violations []string
	violations = append(violations, ValidateID(txn.TransactionID)...)
	violations = append(violations, ValidateID(txn.AccountID)...)
	violations = append(violations, ValidateNotFuture(txn.ActionDate, "ActionDate")...)

	newBalance := currentBalance.Add(txn.Amount)
	violations = append(violations, ValidateNotNegative(newBalance, "NewBalance")...)

	if len(violations) > 0 {
		return apperrors.NewNotValid(violations)
	}
	return nil
}
