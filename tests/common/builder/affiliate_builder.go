//go:build unit || e2e

package builder

import (
	"time"

	domaffiliate "sdi-showcase/internal/domain/affiliate"
	reqdto "sdi-showcase/internal/handler/dto/request"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AffiliateBuilder struct {
	Name       string
	Email      string
	Commission string
	Code       string
	CreatedAt  time.Time
}

func NewAffiliateBuilder() *AffiliateBuilder {
	return &AffiliateBuilder{
		Name:       "Lucía Fernández",
		Email:      "lucia@example.com",
		Commission: "7.5",
		Code:       "AFX7K2Q9",
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AffiliateBuilder) With(mutate func(*AffiliateBuilder)) *AffiliateBuilder {
	mutate(b)
	return b
}

func (b *AffiliateBuilder) WithCommission(c string) *AffiliateBuilder {
	b.Commission = c
	return b
}

// Build methods
func (b *AffiliateBuilder) BuildDomain() (*domaffiliate.Affiliate, error) {
	return domaffiliate.NewAffiliate(b.Name, b.Email, b.Commission, domaffiliate.Code(b.Code), b.CreatedAt)
}

func (b *AffiliateBuilder) BuildRM() readmodel.AffiliateRM {
	c, _ := domaffiliate.ParseCommission(b.Commission)
	return readmodel.AffiliateRM{
		ID:         uuid.New(),
		Name:       b.Name,
		Email:      b.Email,
		Commission: c.Percent(),
		Code:       b.Code,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *AffiliateBuilder) BuildFields() *commands.AffiliateFields {
	commission := b.Commission
	return &commands.AffiliateFields{
		Name:       b.Name,
		Email:      b.Email,
		Commission: &commission,
	}
}

func (b *AffiliateBuilder) BuildCreateRequestDTO() reqdto.CreateAffiliateRequest {
	commission := b.Commission
	return reqdto.CreateAffiliateRequest{
		Name:       b.Name,
		Email:      b.Email,
		Commission: &commission,
	}
}
