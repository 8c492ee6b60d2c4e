package forms

import (
	"sdi-showcase/internal/domain/affiliate"
	"sdi-showcase/internal/usecase/readmodel"
)

type ListingDraft struct {
	Title       string
	Price       string
	Description string
	Images      []readmodel.ImageRM
	VideoURL    string
}

// WithImages returns a copy with images appended after the existing ones.
// The backing array is never shared with earlier copies of the draft.
func (d ListingDraft) WithImages(images ...readmodel.ImageRM) ListingDraft {
	merged := make([]readmodel.ImageRM, 0, len(d.Images)+len(images))
	merged = append(merged, d.Images...)
	d.Images = append(merged, images...)
	return d
}

type AffiliateDraft struct {
	Name       string
	Email      string
	Commission string
}

type ClientDraft struct {
	Name   string
	Email  string
	Budget string
}

type (
	ListingForm   = Form[ListingDraft]
	AffiliateForm = Form[AffiliateDraft]
	ClientForm    = Form[ClientDraft]
)

func NewListingForm() *ListingForm {
	return newForm(func() ListingDraft { return ListingDraft{} })
}

func NewAffiliateForm() *AffiliateForm {
	return newForm(func() AffiliateDraft {
		return AffiliateDraft{Commission: affiliate.DefaultCommission}
	})
}

func NewClientForm() *ClientForm {
	return newForm(func() ClientDraft { return ClientDraft{} })
}
