package queries

import (
	"context"

	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/internal/usecase/shared"
)

//go:generate mockgen -source=client.go -destination=../../../tests/mock/queries/client.go -package=queries
type ClientQueries interface {
	List(ctx context.Context) []readmodel.ClientRM
	Draft(ctx context.Context) forms.ClientDraft
	Export(ctx context.Context) ([]byte, error)
}

type clientQueriesImpl struct {
	session *shared.Session
	form    *forms.ClientForm
}

func NewClientQueries(session *shared.Session, form *forms.ClientForm) ClientQueries {
	return &clientQueriesImpl{session: session, form: form}
}

func (q *clientQueriesImpl) List(_ context.Context) []readmodel.ClientRM {
	return q.session.Clients.Snapshot()
}

func (q *clientQueriesImpl) Draft(_ context.Context) forms.ClientDraft {
	return q.form.Draft()
}

// Export renders the whole client list as JSON text for the clipboard.
func (q *clientQueriesImpl) Export(_ context.Context) ([]byte, error) {
	return exportJSON(q.session.Clients.Snapshot())
}
