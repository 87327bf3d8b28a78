package mapping

import (
	"github.com/finveld/bank_backoffice/internal/core/domain"
	"github.com/finveld/bank_backoffice/internal/models"
)

// ToModelTransaction decomposes the signed domain amount into the stored
// unsigned magnitude plus action flag. A zero amount maps to a withdrawal.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	action := models.ActionWithdrawal
	if d.Amount.IsPositive() {
		action = models.ActionDeposit
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Amount:        d.Amount.Abs(),
		Action:        action,
		ActionDate:    d.ActionDate,
	}
}

// ToDomainTransaction recomposes the stored magnitude and action flag into
// the signed public amount.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	amount := m.Amount
	if m.Action == models.ActionWithdrawal {
		amount = amount.Neg()
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        amount,
		ActionDate:    m.ActionDate,
	}
}
