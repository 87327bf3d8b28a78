package services

import (
	portsrepo "github.com/finveld/bank_backoffice/internal/core/ports/repositories"
	portssvc "github.com/finveld/bank_backoffice/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Account service first; owner deletion delegates its balance scan to it.
	container.Account = NewAccountService(repos.AccountRepo)
	container.Owner = NewOwnerService(repos.OwnerRepo, container.Account)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo)

	return container
}
