package services

import (
	portsrepo "github.com/SscSPs/pricebook_svc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pricebook_svc/internal/core/ports/services"
	"github.com/SscSPs/pricebook_svc/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Price = NewPriceService(repos.PriceRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PriceSvcFacade = (*PriceService)(nil)
)
