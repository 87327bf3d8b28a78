package validation_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
	"github.com/finveld/bank_backoffice/internal/utils/validation"
)

func TestValidateID(t *testing.T) {
	assert.Empty(t, validation.ValidateID(uuid.NewString()))

	assert.NotEmpty(t, validation.ValidateID(""))
	assert.NotEmpty(t, validation.ValidateID("not-a-uuid"))
	assert.NotEmpty(t, validation.ValidateID(uuid.Nil.String()))
}

func TestValidateStringLength_Boundary(t *testing.T) {
	// The boundary is >=: a string exactly at the max length is rejected.
	assert.Empty(t, validation.ValidateStringLength(strings.Repeat("a", 9), 10, "Name"))

	violations := validation.ValidateStringLength(strings.Repeat("a", 10), 10, "Name")
	require.Len(t, violations, 1)
	assert.Equal(t, "Name is too long", violations[0])

	assert.NotEmpty(t, validation.ValidateStringLength(strings.Repeat("a", 11), 10, "Name"))
}

func TestValidateNotNegative(t *testing.T) {
	assert.Empty(t, validation.ValidateNotNegative(decimal.Zero, "Balance"))
	assert.Empty(t, validation.ValidateNotNegative(decimal.NewFromInt(10), "Balance"))

	violations := validation.ValidateNotNegative(decimal.NewFromInt(-1), "Balance")
	require.Len(t, violations, 1)
	assert.Equal(t, "Balance cannot be negative", violations[0])
}

func TestValidateNotFuture(t *testing.T) {
	assert.Empty(t, validation.ValidateNotFuture(time.Now().Add(-time.Minute), "ActionDate"))
	assert.NotEmpty(t, validation.ValidateNotFuture(time.Now().Add(time.Hour), "ActionDate"))
}

func TestValidateOwner_AggregatesAllViolations(t *testing.T) {
	owner := domain.AccountOwner{
		OwnerID: "",
		Name:    strings.Repeat("x", domain.OwnerNameMaxLength),
	}

	err := validation.ValidateOwner(owner)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var notValid *apperrors.NotValidError
	require.True(t, errors.As(err, &notValid))
	assert.Len(t, notValid.Violations, 2)
}

func TestValidateAccount(t *testing.T) {
	valid := domain.Account{
		AccountID: uuid.NewString(),
		Balance:   decimal.Zero,
		Status:    domain.AccountStatusOpen,
	}
	assert.NoError(t, validation.ValidateAccount(valid))

	invalid := valid
	invalid.Balance = decimal.NewFromInt(-5)
	err := validation.ValidateAccount(invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateTransaction_ProspectiveBalance(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     uuid.NewString(),
		Amount:        decimal.NewFromInt(-300),
		ActionDate:    time.Now().Add(-time.Second),
	}

	// Balance 200, withdrawal 300 -> prospective balance -100.
	err := validation.ValidateTransaction(txn, decimal.NewFromInt(200))
	require.Error(t, err)
	var notValid *apperrors.NotValidError
	require.True(t, errors.As(err, &notValid))
	assert.Contains(t, notValid.Violations, "NewBalance cannot be negative")

	// Balance 300, withdrawal 300 -> exactly zero is allowed.
	assert.NoError(t, validation.ValidateTransaction(txn, decimal.NewFromInt(300)))
}
