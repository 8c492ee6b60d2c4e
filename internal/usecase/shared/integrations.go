package shared

import (
	"context"

	"sdi-showcase/internal/usecase/readmodel"
)

// The interfaces below mark where external services plug in. None of them is
// implemented here; the in-process defaults keep everything local and transient.

// ObjectStorage would persist image bytes durably (S3, Cloud Storage) and
// return a public URL in place of the transient handle from ImageStore.
type ObjectStorage interface {
	Upload(ctx context.Context, upload ImageUpload) (publicURL string, err error)
}

// CommissionSettlement would pay out affiliate commissions through a payments API.
type CommissionSettlement interface {
	Settle(ctx context.Context, affiliate readmodel.AffiliateRM, saleAmountCents int64) error
}

// Authenticator would guard the admin-facing forms.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (subject string, err error)
}
