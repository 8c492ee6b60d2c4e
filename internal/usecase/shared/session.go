package shared

import (
	"context"

	"sdi-showcase/internal/usecase/readmodel"
)

// Session owns the three collections of the site. One Session is built per
// process and handed to the use cases; there is no package-level state.
type Session struct {
	Listings   *Collection[readmodel.ListingRM]
	Affiliates *Collection[readmodel.AffiliateRM]
	Clients    *Collection[readmodel.ClientRM]
}

// NewSession loads every collection from its repository.
func NewSession(ctx context.Context, listings ListingRepository, affiliates AffiliateRepository, clients ClientRepository) *Session {
	return &Session{
		Listings:   NewCollection(ctx, listings),
		Affiliates: NewCollection(ctx, affiliates),
		Clients:    NewCollection(ctx, clients),
	}
}
