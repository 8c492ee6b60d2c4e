package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ClientRM struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Budget       string    `json:"budget"`
	RegisteredAt time.Time `json:"registeredAt"`
}
