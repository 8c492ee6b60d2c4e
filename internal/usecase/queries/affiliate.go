package queries

import (
	"context"

	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/internal/usecase/shared"
)

//go:generate mockgen -source=affiliate.go -destination=../../../tests/mock/queries/affiliate.go -package=queries
type AffiliateQueries interface {
	List(ctx context.Context) []readmodel.AffiliateRM
	Draft(ctx context.Context) forms.AffiliateDraft
}

type affiliateQueriesImpl struct {
	session *shared.Session
	form    *forms.AffiliateForm
}

func NewAffiliateQueries(session *shared.Session, form *forms.AffiliateForm) AffiliateQueries {
	return &affiliateQueriesImpl{session: session, form: form}
}

func (q *affiliateQueriesImpl) List(_ context.Context) []readmodel.AffiliateRM {
	return q.session.Affiliates.Snapshot()
}

func (q *affiliateQueriesImpl) Draft(_ context.Context) forms.AffiliateDraft {
	return q.form.Draft()
}
