package request

import (
	"sdi-showcase/internal/usecase/commands"
)

type CreateAffiliateRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=120"`
	Email string `json:"email" binding:"required,notblank"`
	// free text such as "7.5" or "7,5%"; parsed by the use case.
	// Absent keeps the draft's commission.
	Commission *string `json:"commission,omitempty" binding:"omitempty,notblank"`
}

func (r CreateAffiliateRequest) ToFields() *commands.AffiliateFields {
	return &commands.AffiliateFields{
		Name:       r.Name,
		Email:      r.Email,
		Commission: r.Commission,
	}
}

type PatchAffiliateDraftRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Email      *string `json:"email,omitempty"`
	Commission *string `json:"commission,omitempty"`
}

func (r PatchAffiliateDraftRequest) ToPatch() commands.AffiliateDraftPatch {
	return commands.AffiliateDraftPatch{
		Name:       r.Name,
		Email:      r.Email,
		Commission: r.Commission,
	}
}
