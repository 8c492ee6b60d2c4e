package commands

import (
	"context"
	"log/slog"

	domclient "sdi-showcase/internal/domain/client"
	"sdi-showcase/internal/pkg/clock"
	"sdi-showcase/internal/pkg/errs"
	"sdi-showcase/internal/pkg/patch"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/internal/usecase/shared"
)

type ClientFields struct {
	Name   string
	Email  string
	Budget string
}

type ClientDraftPatch struct {
	Name   *string
	Email  *string
	Budget *string
}

//go:generate mockgen -source=client.go -destination=../../../tests/mock/commands/client.go -package=commands
type ClientCommands interface {
	PatchDraft(ctx context.Context, patch ClientDraftPatch) forms.ClientDraft
	ResetDraft(ctx context.Context) forms.ClientDraft
	Submit(ctx context.Context, fields *ClientFields) (*readmodel.ClientRM, error)
}

type clientCommandsImpl struct {
	session *shared.Session
	form    *forms.ClientForm
	clock   clock.Clock
	logger  *slog.Logger
}

func NewClientCommands(session *shared.Session, form *forms.ClientForm, clk clock.Clock, logger *slog.Logger) ClientCommands {
	return &clientCommandsImpl{
		session: session,
		form:    form,
		clock:   clk,
		logger:  logger,
	}
}

func (uc *clientCommandsImpl) PatchDraft(_ context.Context, p ClientDraftPatch) forms.ClientDraft {
	return uc.form.Update(func(d *forms.ClientDraft) {
		patch.Apply(&d.Name, p.Name)
		patch.Apply(&d.Email, p.Email)
		patch.Apply(&d.Budget, p.Budget)
	})
}

func (uc *clientCommandsImpl) ResetDraft(_ context.Context) forms.ClientDraft {
	return uc.form.Reset()
}

func (uc *clientCommandsImpl) Submit(ctx context.Context, fields *ClientFields) (*readmodel.ClientRM, error) {
	var apply func(d *forms.ClientDraft)
	if fields != nil {
		apply = func(d *forms.ClientDraft) {
			d.Name = fields.Name
			d.Email = fields.Email
			d.Budget = fields.Budget
		}
	}

	var (
		created    readmodel.ClientRM
		persistErr error
	)
	err := uc.form.SubmitWith(apply, func(d forms.ClientDraft) error {
		c, err := domclient.NewClient(d.Name, d.Email, d.Budget, uc.clock.Now())
		if err != nil {
			return errs.Validation(err)
		}
		created = toClientRM(c)
		persistErr = uc.session.Clients.Prepend(ctx, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if persistErr != nil {
		return &created, errs.Wrap(persistErr, "persist clients")
	}

	uc.logger.Info("client registered", "client_id", created.ID)
	return &created, nil
}
