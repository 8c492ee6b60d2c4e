//go:build unit || e2e

package builder

import (
	"time"

	domclient "sdi-showcase/internal/domain/client"
	reqdto "sdi-showcase/internal/handler/dto/request"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ClientBuilder struct {
	Name         string
	Email        string
	Budget       string
	RegisteredAt time.Time
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		Name:         "Martín Gómez",
		Email:        "martin@example.com",
		Budget:       "USD 80.000 - 100.000",
		RegisteredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ClientBuilder) BuildDomain() (*domclient.Client, error) {
	return domclient.NewClient(b.Name, b.Email, b.Budget, b.RegisteredAt)
}

func (b *ClientBuilder) BuildRM() readmodel.ClientRM {
	return readmodel.ClientRM{
		ID:           uuid.New(),
		Name:         b.Name,
		Email:        b.Email,
		Budget:       b.Budget,
		RegisteredAt: b.RegisteredAt,
	}
}

func (b *ClientBuilder) BuildFields() *commands.ClientFields {
	return &commands.ClientFields{
		Name:   b.Name,
		Email:  b.Email,
		Budget: b.Budget,
	}
}

func (b *ClientBuilder) BuildCreateRequestDTO() reqdto.CreateClientRequest {
	return reqdto.CreateClientRequest{
		Name:   b.Name,
		Email:  b.Email,
		Budget: b.Budget,
	}
}
