package commands

import (
	"context"
	"log/slog"

	domlisting "sdi-showcase/internal/domain/listing"
	"sdi-showcase/internal/pkg/clock"
	"sdi-showcase/internal/pkg/errs"
	"sdi-showcase/internal/pkg/patch"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoImagesSelected = errs.New("no images selected")

// ListingFields replaces every text field of the listing draft. Images are untouched.
type ListingFields struct {
	Title       string
	Price       string
	Description string
	VideoURL    string
}

// ListingDraftPatch changes only the non-nil fields.
type ListingDraftPatch struct {
	Title       *string
	Price       *string
	Description *string
	VideoURL    *string
}

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/commands/listing.go -package=commands
type ListingCommands interface {
	PatchDraft(ctx context.Context, patch ListingDraftPatch) forms.ListingDraft
	ResetDraft(ctx context.Context) forms.ListingDraft
	AttachImages(ctx context.Context, uploads []shared.ImageUpload) (forms.ListingDraft, error)
	Submit(ctx context.Context, fields *ListingFields) (*readmodel.ListingRM, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type listingCommandsImpl struct {
	session *shared.Session
	form    *forms.ListingForm
	images  shared.ImageStore
	clock   clock.Clock
	logger  *slog.Logger
}

func NewListingCommands(session *shared.Session, form *forms.ListingForm, images shared.ImageStore, clk clock.Clock, logger *slog.Logger) ListingCommands {
	return &listingCommandsImpl{
		session: session,
		form:    form,
		images:  images,
		clock:   clk,
		logger:  logger,
	}
}

func (uc *listingCommandsImpl) PatchDraft(_ context.Context, p ListingDraftPatch) forms.ListingDraft {
	return uc.form.Update(func(d *forms.ListingDraft) {
		patch.Apply(&d.Title, p.Title)
		patch.Apply(&d.Price, p.Price)
		patch.Apply(&d.Description, p.Description)
		patch.Apply(&d.VideoURL, p.VideoURL)
	})
}

func (uc *listingCommandsImpl) ResetDraft(_ context.Context) forms.ListingDraft {
	return uc.form.Reset()
}

func (uc *listingCommandsImpl) AttachImages(ctx context.Context, uploads []shared.ImageUpload) (forms.ListingDraft, error) {
	if len(uploads) == 0 {
		return uc.form.Draft(), errs.Validation(ErrNoImagesSelected)
	}

	// nothing is stored unless the whole selection is acceptable
	for _, up := range uploads {
		if err := uc.images.Check(up); err != nil {
			return uc.form.Draft(), errs.Wrapf(err, "attach image %q", up.Name)
		}
	}

	attached := make([]readmodel.ImageRM, 0, len(uploads))
	for _, up := range uploads {
		handle, err := uc.images.Put(ctx, up)
		if err != nil {
			return uc.form.Draft(), errs.Wrapf(err, "attach image %q", up.Name)
		}
		attached = append(attached, readmodel.ImageRM{Name: up.Name, URL: handle})
	}

	return uc.form.Update(func(d *forms.ListingDraft) {
		*d = d.WithImages(attached...)
	}), nil
}

func (uc *listingCommandsImpl) Submit(ctx context.Context, fields *ListingFields) (*readmodel.ListingRM, error) {
	var apply func(d *forms.ListingDraft)
	if fields != nil {
		apply = func(d *forms.ListingDraft) {
			d.Title = fields.Title
			d.Price = fields.Price
			d.Description = fields.Description
			d.VideoURL = fields.VideoURL
		}
	}

	var (
		created    readmodel.ListingRM
		persistErr error
	)
	err := uc.form.SubmitWith(apply, func(d forms.ListingDraft) error {
		images, err := fromImageRMs(d.Images)
		if err != nil {
			return errs.Validation(err)
		}
		l, err := domlisting.NewListing(d.Title, d.Price, d.Description, images, d.VideoURL, uc.clock.Now())
		if err != nil {
			return errs.Validation(err)
		}
		created = toListingRM(l)
		// the record is in memory even if the slot write fails, so the draft is spent
		persistErr = uc.session.Listings.Prepend(ctx, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if persistErr != nil {
		return &created, errs.Wrap(persistErr, "persist listings")
	}

	uc.logger.Info("listing published", "listing_id", created.ID, "images", len(created.Images))
	return &created, nil
}

func (uc *listingCommandsImpl) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := uc.session.Listings.RemoveFunc(ctx, func(l readmodel.ListingRM) bool {
		return l.ID == id
	})
	if err != nil {
		return removed, errs.Wrap(err, "persist listings")
	}
	if removed {
		uc.logger.Info("listing removed", "listing_id", id)
	}
	return removed, nil
}
