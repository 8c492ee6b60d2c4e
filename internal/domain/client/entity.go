package client

import (
	"time"

	"sdi-showcase/internal/domain/contact"

	"github.com/google/uuid"
)

// Client is a prospective investor who left contact details.
type Client struct {
	id           uuid.UUID
	name         contact.Name
	email        contact.Email
	budget       Budget
	registeredAt time.Time
}

func NewClient(name, email, budget string, now time.Time) (*Client, error) {
	n, err := contact.NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := contact.NewEmail(email)
	if err != nil {
		return nil, err
	}
	b, err := NewBudget(budget)
	if err != nil {
		return nil, err
	}

	return &Client{
		id:           uuid.New(),
		name:         n,
		email:        e,
		budget:       b,
		registeredAt: now,
	}, nil
}

func (c *Client) ID() uuid.UUID           { return c.id }
func (c *Client) Name() contact.Name      { return c.name }
func (c *Client) Email() contact.Email    { return c.email }
func (c *Client) Budget() Budget          { return c.budget }
func (c *Client) RegisteredAt() time.Time { return c.registeredAt }
