package response

import (
	"time"

	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AffiliateResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Commission float64   `json:"commission"`
	Code       string    `json:"code"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AffiliateDraftResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Commission string `json:"commission"`
}

func FromAffiliateRM(rm *readmodel.AffiliateRM) *AffiliateResponse {
	var res AffiliateResponse
	_ = copier.Copy(&res, rm)
	return &res
}

func FromAffiliateRMs(rms []readmodel.AffiliateRM) []*AffiliateResponse {
	out := make([]*AffiliateResponse, len(rms))
	for i := range rms {
		out[i] = FromAffiliateRM(&rms[i])
	}
	return out
}

func FromAffiliateDraft(d forms.AffiliateDraft) *AffiliateDraftResponse {
	var res AffiliateDraftResponse
	_ = copier.Copy(&res, &d)
	return &res
}
