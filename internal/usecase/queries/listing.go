package queries

import (
	"context"

	"sdi-showcase/internal/pkg/errs"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.New("listing not found")

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/queries/listing.go -package=queries
type ListingQueries interface {
	List(ctx context.Context) []readmodel.ListingRM
	GetByID(ctx context.Context, id uuid.UUID) (*readmodel.ListingRM, error)
	Draft(ctx context.Context) forms.ListingDraft
	Export(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type listingQueriesImpl struct {
	session *shared.Session
	form    *forms.ListingForm
}

func NewListingQueries(session *shared.Session, form *forms.ListingForm) ListingQueries {
	return &listingQueriesImpl{session: session, form: form}
}

func (q *listingQueriesImpl) List(_ context.Context) []readmodel.ListingRM {
	return q.session.Listings.Snapshot()
}

func (q *listingQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*readmodel.ListingRM, error) {
	l, ok := q.session.Listings.Find(func(l readmodel.ListingRM) bool { return l.ID == id })
	if !ok {
		return nil, errs.Mark(ErrListingNotFound, errs.ErrNotFound)
	}
	return &l, nil
}

func (q *listingQueriesImpl) Draft(_ context.Context) forms.ListingDraft {
	return q.form.Draft()
}

// Export renders one listing as the JSON text a user copies to the clipboard.
func (q *listingQueriesImpl) Export(ctx context.Context, id uuid.UUID) ([]byte, error) {
	l, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return exportJSON(l)
}
