package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// NotValidError aggregates every field violation found for an entity.
// The violation list is never truncated to the first failure.
type NotValidError struct {
	Violations []string
}

func (e *NotValidError) Error() string {
	return "entity not valid: " + strings.Join(e.Violations, "; ")
}

func (e *NotValidError) Unwrap() error { return ErrValidation }

// NewNotValid builds a NotValidError from an ordered list of violations.
func NewNotValid(violations []string) *NotValidError {
	return &NotValidError{Violations: violations}
}

// BalanceNotZeroError signals that a closure or deletion was blocked because
// one or more accounts still carry a balance. It carries the offending IDs.
type BalanceNotZeroError struct {
	AccountIDs []string
}

func (e *BalanceNotZeroError) Error() string {
	return fmt.Sprintf("account balance is not zero for account(s): %s", strings.Join(e.AccountIDs, ", "))
}

// AccountClosedError signals that a transaction mutation was attempted on a
// closed account.
type AccountClosedError struct {
	AccountID string
}

func (e *AccountClosedError) Error() string {
	return fmt.Sprintf("transactions cannot be performed on closed account %s", e.AccountID)
}

// InvalidAccountOperationError signals that the caller's previous-transaction
// token did not match the latest transaction in the ledger.
type InvalidAccountOperationError struct {
	AccountID string
}

func (e *InvalidAccountOperationError) Error() string {
	return fmt.Sprintf("could not perform the requested operation on account %s", e.AccountID)
}
