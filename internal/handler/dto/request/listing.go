package request

import (
	"sdi-showcase/internal/usecase/commands"
)

type CreateListingRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Price       string `json:"price" binding:"required,notblank,max=64"`
	Description string `json:"description" binding:"max=5000"`
	VideoURL    string `json:"video_url" binding:"omitempty,url"`
}

func (r CreateListingRequest) ToFields() *commands.ListingFields {
	return &commands.ListingFields{
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		VideoURL:    r.VideoURL,
	}
}

// PatchListingDraftRequest leaves absent fields untouched. Blank values are
// allowed here; a draft is checked only on submit.
type PatchListingDraftRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Price       *string `json:"price,omitempty" binding:"omitempty,max=64"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	VideoURL    *string `json:"video_url,omitempty"`
}

func (r PatchListingDraftRequest) ToPatch() commands.ListingDraftPatch {
	return commands.ListingDraftPatch{
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		VideoURL:    r.VideoURL,
	}
}
