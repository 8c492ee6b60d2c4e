//go:build unit

package commands_test

import (
	"context"
	"testing"

	"sdi-showcase/internal/domain/contact"
	"sdi-showcase/internal/pkg/clock"
	"sdi-showcase/internal/pkg/errs"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/tests/common/builder"
	"sdi-showcase/tests/common/sessiontest"
	"sdi-showcase/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: registered now and newest first", func(t *testing.T) {
		session, _ := sessiontest.NewSession(t)
		form := forms.NewClientForm()
		uc := commands.NewClientCommands(session, form, clock.NewMockClock(fixedNow), testutil.DiscardLogger())

		first, err := uc.Submit(ctx, builder.NewClientBuilder().BuildFields())
		require.NoError(t, err)
		second, err := uc.Submit(ctx, builder.NewClientBuilder().With(func(b *builder.ClientBuilder) { b.Budget = "" }).BuildFields())
		require.NoError(t, err)

		assert.Equal(t, fixedNow, first.RegisteredAt)
		assert.Empty(t, second.Budget)
		snap := session.Clients.Snapshot()
		require.Len(t, snap, 2)
		assert.Equal(t, second.ID, snap[0].ID)
		assert.Equal(t, forms.ClientDraft{}, form.Draft())
	})

	t.Run("error: invalid email keeps draft", func(t *testing.T) {
		session, store := sessiontest.NewSession(t)
		form := forms.NewClientForm()
		uc := commands.NewClientCommands(session, form, clock.NewMockClock(fixedNow), testutil.DiscardLogger())

		fields := builder.NewClientBuilder().With(func(b *builder.ClientBuilder) { b.Email = "nope" }).BuildFields()
		got, err := uc.Submit(ctx, fields)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, contact.ErrInvalidEmail)
		assert.True(t, errs.IsValidation(err))
		assert.Equal(t, "nope", form.Draft().Email)
		assert.Equal(t, 0, session.Clients.Len())
		assert.Zero(t, store.Sets.Load())
	})

	t.Run("draft patch and reset", func(t *testing.T) {
		session, _ := sessiontest.NewSession(t)
		uc := commands.NewClientCommands(session, forms.NewClientForm(), clock.NewMockClock(fixedNow), testutil.DiscardLogger())

		budget := "50k"
		d := uc.PatchDraft(ctx, commands.ClientDraftPatch{Budget: &budget})
		assert.Equal(t, "50k", d.Budget)
		assert.Equal(t, forms.ClientDraft{}, uc.ResetDraft(ctx))
	})
}
