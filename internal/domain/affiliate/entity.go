package affiliate

import (
	"time"

	"sdi-showcase/internal/domain/contact"

	"github.com/google/uuid"
)

// Affiliate is an employee account earning commission on sales.
// It is immutable after registration.
type Affiliate struct {
	id         uuid.UUID
	name       contact.Name
	email      contact.Email
	commission Commission
	code       Code
	createdAt  time.Time
}

func NewAffiliate(name, email, commission string, code Code, now time.Time) (*Affiliate, error) {
	n, err := contact.NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := contact.NewEmail(email)
	if err != nil {
		return nil, err
	}
	c, err := ParseCommission(commission)
	if err != nil {
		return nil, err
	}
	cd, err := NewCode(code.String())
	if err != nil {
		return nil, err
	}

	return &Affiliate{
		id:         uuid.New(),
		name:       n,
		email:      e,
		commission: c,
		code:       cd,
		createdAt:  now,
	}, nil
}

func (a *Affiliate) ID() uuid.UUID          { return a.id }
func (a *Affiliate) Name() contact.Name     { return a.name }
func (a *Affiliate) Email() contact.Email   { return a.email }
func (a *Affiliate) Commission() Commission { return a.commission }
func (a *Affiliate) Code() Code             { return a.code }
func (a *Affiliate) CreatedAt() time.Time   { return a.createdAt }
