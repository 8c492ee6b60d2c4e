package response

import (
	"time"

	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClientResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Budget       string    `json:"budget"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type ClientDraftResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Budget string `json:"budget"`
}

func FromClientRM(rm *readmodel.ClientRM) *ClientResponse {
	var res ClientResponse
	_ = copier.Copy(&res, rm)
	return &res
}

func FromClientRMs(rms []readmodel.ClientRM) []*ClientResponse {
	out := make([]*ClientResponse, len(rms))
	for i := range rms {
		out[i] = FromClientRM(&rms[i])
	}
	return out
}

func FromClientDraft(d forms.ClientDraft) *ClientDraftResponse {
	var res ClientDraftResponse
	_ = copier.Copy(&res, &d)
	return &res
}
