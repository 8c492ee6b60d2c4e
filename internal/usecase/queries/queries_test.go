//go:build unit

package queries_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sdi-showcase/internal/pkg/errs"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/queries"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/tests/common/builder"
	"sdi-showcase/tests/common/sessiontest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingQueries(t *testing.T) {
	ctx := context.Background()
	session, _ := sessiontest.NewSession(t)
	form := forms.NewListingForm()
	q := queries.NewListingQueries(session, form)

	older := builder.NewListingBuilder().WithTitle("Older").BuildRM()
	newer := builder.NewListingBuilder().WithTitle("Newer").BuildRM()
	require.NoError(t, session.Listings.Prepend(ctx, older))
	require.NoError(t, session.Listings.Prepend(ctx, newer))

	t.Run("List returns newest first", func(t *testing.T) {
		got := q.List(ctx)
		require.Len(t, got, 2)
		assert.Equal(t, "Newer", got[0].Title)
		assert.Equal(t, "Older", got[1].Title)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := q.GetByID(ctx, older.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(&older, got); diff != "" {
			t.Errorf("listing mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		assert.True(t, errors.Is(err, queries.ErrListingNotFound))
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("Export is the persisted JSON of one listing", func(t *testing.T) {
		b, err := q.Export(ctx, newer.ID)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(b, &fields))
		assert.Equal(t, newer.ID.String(), fields["id"])
		assert.Equal(t, "Newer", fields["title"])
		assert.Contains(t, fields, "videoURL")
		assert.Contains(t, fields, "createdAt")

		var back readmodel.ListingRM
		require.NoError(t, json.Unmarshal(b, &back))
		if diff := cmp.Diff(newer, back); diff != "" {
			t.Errorf("export round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Export unknown id", func(t *testing.T) {
		_, err := q.Export(ctx, uuid.New())
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("Draft reflects the form", func(t *testing.T) {
		form.Update(func(d *forms.ListingDraft) { d.Title = "WIP" })
		assert.Equal(t, "WIP", q.Draft(ctx).Title)
	})
}

func TestAffiliateQueries(t *testing.T) {
	ctx := context.Background()
	session, _ := sessiontest.NewSession(t)
	q := queries.NewAffiliateQueries(session, forms.NewAffiliateForm())

	assert.Empty(t, q.List(ctx))
	assert.Equal(t, "5", q.Draft(ctx).Commission)

	a := builder.NewAffiliateBuilder().BuildRM()
	require.NoError(t, session.Affiliates.Prepend(ctx, a))
	got := q.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, a.Code, got[0].Code)
}

func TestClientQueries_Export(t *testing.T) {
	ctx := context.Background()
	session, _ := sessiontest.NewSession(t)
	q := queries.NewClientQueries(session, forms.NewClientForm())

	t.Run("empty list exports as []", func(t *testing.T) {
		b, err := q.Export(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(b))
	})

	t.Run("exports the whole list newest first", func(t *testing.T) {
		first := builder.NewClientBuilder().BuildRM()
		second := builder.NewClientBuilder().With(func(b *builder.ClientBuilder) { b.Name = "Sofía" }).BuildRM()
		require.NoError(t, session.Clients.Prepend(ctx, first))
		require.NoError(t, session.Clients.Prepend(ctx, second))

		b, err := q.Export(ctx)
		require.NoError(t, err)

		var got []readmodel.ClientRM
		require.NoError(t, json.Unmarshal(b, &got))
		if diff := cmp.Diff([]readmodel.ClientRM{second, first}, got); diff != "" {
			t.Errorf("export mismatch (-want +got):\n%s", diff)
		}
	})
}
