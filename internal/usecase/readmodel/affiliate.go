package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AffiliateRM struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Commission float64   `json:"commission"`
	Code       string    `json:"code"`
	CreatedAt  time.Time `json:"createdAt"`
}
