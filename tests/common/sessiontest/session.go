//go:build unit || e2e

package sessiontest

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"sdi-showcase/internal/infra/recordstore"
	"sdi-showcase/internal/infra/slot"
	"sdi-showcase/internal/usecase/shared"
	"sdi-showcase/tests/common/testutil"
)

var ErrSlotWrite = errors.New("slot write failed")

// FlakyStore wraps a slot store and fails every Set while Fail is true.
type FlakyStore struct {
	slot.Store
	Fail atomic.Bool
	Sets atomic.Int32
}

func (s *FlakyStore) Set(ctx context.Context, key string, value []byte) error {
	s.Sets.Add(1)
	if s.Fail.Load() {
		return ErrSlotWrite
	}
	return s.Store.Set(ctx, key, value)
}

// NewSession builds a session over a fresh in-memory slot store.
func NewSession(t *testing.T) (*shared.Session, *FlakyStore) {
	t.Helper()
	store := &FlakyStore{Store: slot.NewMemoryStore()}
	return NewSessionOn(t, store), store
}

func NewSessionOn(t *testing.T, store slot.Store) *shared.Session {
	t.Helper()
	logger := testutil.DiscardLogger()
	return shared.NewSession(context.Background(),
		recordstore.NewListingRepository(store, logger),
		recordstore.NewAffiliateRepository(store, logger),
		recordstore.NewClientRepository(store, logger),
	)
}
