package mapping

import (
	"github.com/finveld/bank_backoffice/internal/core/domain"
	"github.com/finveld/bank_backoffice/internal/models"
)

// ToModelAccount converts a domain account to its persisted row shape.
func ToModelAccount(d domain.Account) models.Account {
	var reason *string
	if d.ClosureReason != nil {
		r := string(*d.ClosureReason)
		reason = &r
	}
	return models.Account{
		AccountID:     d.AccountID,
		OwnerID:       d.OwnerID,
		Balance:       d.Balance,
		Status:        models.AccountStatus(d.Status),
		ClosureReason: reason,
		ClosureDate:   d.ClosureDate,
	}
}

// ToDomainAccount converts a persisted account row to its domain shape.
func ToDomainAccount(m models.Account) domain.Account {
	var reason *domain.ClosureReason
	if m.ClosureReason != nil {
		r := domain.ClosureReason(*m.ClosureReason)
		reason = &r
	}
	return domain.Account{
		AccountID:     m.AccountID,
		OwnerID:       m.OwnerID,
		Balance:       m.Balance,
		Status:        domain.AccountStatus(m.Status),
		ClosureReason: reason,
		ClosureDate:   m.ClosureDate,
	}
}
