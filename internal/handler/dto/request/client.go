package request

import (
	"sdi-showcase/internal/usecase/commands"
)

type CreateClientRequest struct {
	Name   string `json:"name" binding:"required,notblank,max=120"`
	Email  string `json:"email" binding:"required,notblank"`
	Budget string `json:"budget" binding:"max=64"`
}

func (r CreateClientRequest) ToFields() *commands.ClientFields {
	return &commands.ClientFields{
		Name:   r.Name,
		Email:  r.Email,
		Budget: r.Budget,
	}
}

type PatchClientDraftRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Email  *string `json:"email,omitempty"`
	Budget *string `json:"budget,omitempty" binding:"omitempty,max=64"`
}

func (r PatchClientDraftRequest) ToPatch() commands.ClientDraftPatch {
	return commands.ClientDraftPatch{
		Name:   r.Name,
		Email:  r.Email,
		Budget: r.Budget,
	}
}
