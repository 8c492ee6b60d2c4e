package components

import (
	"context"

	"sdi-showcase/internal/infra/recordstore"
	"sdi-showcase/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		recordstore.NewListingRepository,
		recordstore.NewAffiliateRepository,
		recordstore.NewClientRepository,
		NewSession,
	),
)

// NewSession loads all three collections once at startup.
func NewSession(listings shared.ListingRepository, affiliates shared.AffiliateRepository, clients shared.ClientRepository) *shared.Session {
	return shared.NewSession(context.Background(), listings, affiliates, clients)
}
