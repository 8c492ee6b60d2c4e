package commands

import (
	"context"
	"io"
	"log/slog"

	domaffiliate "sdi-showcase/internal/domain/affiliate"
	"sdi-showcase/internal/pkg/clock"
	"sdi-showcase/internal/pkg/errs"
	"sdi-showcase/internal/pkg/patch"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/internal/usecase/shared"
)

// AffiliateFields replaces the draft's contact fields. A nil Commission keeps the draft's value.
type AffiliateFields struct {
	Name       string
	Email      string
	Commission *string
}

type AffiliateDraftPatch struct {
	Name       *string
	Email      *string
	Commission *string
}

//go:generate mockgen -source=affiliate.go -destination=../../../tests/mock/commands/affiliate.go -package=commands
type AffiliateCommands interface {
	PatchDraft(ctx context.Context, patch AffiliateDraftPatch) forms.AffiliateDraft
	ResetDraft(ctx context.Context) forms.AffiliateDraft
	Submit(ctx context.Context, fields *AffiliateFields) (*readmodel.AffiliateRM, error)
}

type affiliateCommandsImpl struct {
	session    *shared.Session
	form       *forms.AffiliateForm
	clock      clock.Clock
	codeSource io.Reader
	logger     *slog.Logger
}

func NewAffiliateCommands(session *shared.Session, form *forms.AffiliateForm, clk clock.Clock, logger *slog.Logger) AffiliateCommands {
	return &affiliateCommandsImpl{
		session: session,
		form:    form,
		clock:   clk,
		logger:  logger,
	}
}

func (uc *affiliateCommandsImpl) PatchDraft(_ context.Context, p AffiliateDraftPatch) forms.AffiliateDraft {
	return uc.form.Update(func(d *forms.AffiliateDraft) {
		patch.Apply(&d.Name, p.Name)
		patch.Apply(&d.Email, p.Email)
		patch.Apply(&d.Commission, p.Commission)
	})
}

func (uc *affiliateCommandsImpl) ResetDraft(_ context.Context) forms.AffiliateDraft {
	return uc.form.Reset()
}

func (uc *affiliateCommandsImpl) Submit(ctx context.Context, fields *AffiliateFields) (*readmodel.AffiliateRM, error) {
	var apply func(d *forms.AffiliateDraft)
	if fields != nil {
		apply = func(d *forms.AffiliateDraft) {
			d.Name = fields.Name
			d.Email = fields.Email
			patch.Apply(&d.Commission, fields.Commission)
		}
	}

	var (
		created    readmodel.AffiliateRM
		persistErr error
	)
	err := uc.form.SubmitWith(apply, func(d forms.AffiliateDraft) error {
		code, err := domaffiliate.GenerateCode(uc.codeSource)
		if err != nil {
			return errs.Wrap(err, "generate referral code")
		}
		a, err := domaffiliate.NewAffiliate(d.Name, d.Email, d.Commission, code, uc.clock.Now())
		if err != nil {
			return errs.Validation(err)
		}
		created = toAffiliateRM(a)
		persistErr = uc.session.Affiliates.Prepend(ctx, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if persistErr != nil {
		return &created, errs.Wrap(persistErr, "persist affiliates")
	}

	uc.logger.Info("affiliate registered", "affiliate_id", created.ID, "code", created.Code)
	return &created, nil
}
