// Package recordstore maps typed collections onto slots as whole JSON arrays.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"sdi-showcase/internal/infra"
	"sdi-showcase/internal/infra/slot"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/internal/usecase/shared"
)

type Repository[T any] struct {
	slots  slot.Store
	key    string
	logger *slog.Logger
}

func NewRepository[T any](slots slot.Store, key string, logger *slog.Logger) *Repository[T] {
	return &Repository[T]{slots: slots, key: key, logger: logger}
}

func NewListingRepository(slots slot.Store, logger *slog.Logger) shared.ListingRepository {
	return NewRepository[readmodel.ListingRM](slots, shared.ListingsKey, logger)
}

func NewAffiliateRepository(slots slot.Store, logger *slog.Logger) shared.AffiliateRepository {
	return NewRepository[readmodel.AffiliateRM](slots, shared.AffiliatesKey, logger)
}

func NewClientRepository(slots slot.Store, logger *slog.Logger) shared.ClientRepository {
	return NewRepository[readmodel.ClientRM](slots, shared.ClientsKey, logger)
}

func (r *Repository[T]) Key() string {
	return r.key
}

// Load never fails: an absent, empty, malformed or unreadable slot yields an empty collection.
func (r *Repository[T]) Load(ctx context.Context) []T {
	raw, err := r.slots.Get(ctx, r.key)
	if err != nil {
		r.logger.Warn("failed to read slot, starting empty",
			slog.String("slot", r.key),
			slog.String("error", err.Error()))
		return []T{}
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		r.logger.Warn("malformed slot, starting empty",
			slog.String("slot", r.key),
			slog.String("error", err.Error()))
		return []T{}
	}
	if records == nil {
		// literal "null"
		return []T{}
	}
	return records
}

func (r *Repository[T]) Persist(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindEncodeFailure, r.key, "failed to encode collection", err)
	}
	if err := r.slots.Set(ctx, r.key, raw); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStorageFailure, r.key, "failed to write collection", err)
	}
	return nil
}
