package mapping

import (
	"github.com/finveld/bank_backoffice/internal/core/domain"
	"github.com/finveld/bank_backoffice/internal/models"
)

// ToModelOwner converts a domain owner to its persisted row shape.
func ToModelOwner(d domain.AccountOwner) models.AccountOwner {
	return models.AccountOwner{
		OwnerID: d.OwnerID,
		Name:    d.Name,
	}
}

// ToDomainOwner converts a persisted owner row to its domain shape.
func ToDomainOwner(m models.AccountOwner) domain.AccountOwner {
	return domain.AccountOwner{
		OwnerID: m.OwnerID,
		Name:    m.Name,
	}
}
