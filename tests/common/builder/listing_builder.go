//go:build unit || e2e

package builder

import (
	"time"

	domlisting "sdi-showcase/internal/domain/listing"
	reqdto "sdi-showcase/internal/handler/dto/request"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	Title       string
	Price       string
	Description string
	Images      []readmodel.ImageRM
	VideoURL    string
	CreatedAt   time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		Title:       "Departamento 2 ambientes",
		Price:       "USD 120.000",
		Description: "Luminoso, a metros del subte.",
		Images: []readmodel.ImageRM{
			{Name: "living.jpg", URL: "/api/blobs/" + uuid.NewString()},
		},
		VideoURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithTitle(title string) *ListingBuilder {
	b.Title = title
	return b
}

func (b *ListingBuilder) WithPrice(price string) *ListingBuilder {
	b.Price = price
	return b
}

func (b *ListingBuilder) WithVideoURL(u string) *ListingBuilder {
	b.VideoURL = u
	return b
}

// Build methods
func (b *ListingBuilder) BuildDomain() (*domlisting.Listing, error) {
	images := make([]domlisting.Image, 0, len(b.Images))
	for _, img := range b.Images {
		i, err := domlisting.NewImage(img.Name, img.URL)
		if err != nil {
			return nil, err
		}
		images = append(images, i)
	}
	return domlisting.NewListing(b.Title, b.Price, b.Description, images, b.VideoURL, b.CreatedAt)
}

func (b *ListingBuilder) BuildRM() readmodel.ListingRM {
	return readmodel.ListingRM{
		ID:          uuid.New(),
		Title:       b.Title,
		Price:       b.Price,
		Description: b.Description,
		Images:      append([]readmodel.ImageRM{}, b.Images...),
		VideoURL:    b.VideoURL,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ListingBuilder) BuildFields() *commands.ListingFields {
	return &commands.ListingFields{
		Title:       b.Title,
		Price:       b.Price,
		Description: b.Description,
		VideoURL:    b.VideoURL,
	}
}

func (b *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Title:       b.Title,
		Price:       b.Price,
		Description: b.Description,
		VideoURL:    b.VideoURL,
	}
}
