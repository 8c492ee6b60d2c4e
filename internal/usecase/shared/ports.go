package shared

import (
	"context"

	"sdi-showcase/internal/usecase/readmodel"
)

// Slot keys of the three persisted collections.
const (
	ListingsKey   = "sdi_listings"
	AffiliatesKey = "sdi_affiliates"
	ClientsKey    = "sdi_clients"
)

// CollectionRepository persists one whole collection under a single key.
// Load never fails: absent or malformed data reads as an empty collection.
type CollectionRepository[T any] interface {
	Key() string
	Load(ctx context.Context) []T
	Persist(ctx context.Context, records []T) error
}

type (
	ListingRepository   = CollectionRepository[readmodel.ListingRM]
	AffiliateRepository = CollectionRepository[readmodel.AffiliateRM]
	ClientRepository    = CollectionRepository[readmodel.ClientRM]
)

// ImageUpload is one selected file before it is turned into a display handle.
type ImageUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// ImageStore hands out transient display handles for attached images.
// Check reports whether Put would accept the upload without storing it.
type ImageStore interface {
	Check(upload ImageUpload) error
	Put(ctx context.Context, upload ImageUpload) (handle string, err error)
}
