package listing

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a property offer. Once created it is only ever removed, never edited.
type Listing struct {
	id          uuid.UUID
	title       Title
	price       Price
	description Description
	images      []Image
	videoURL    VideoURL
	createdAt   time.Time
}

func NewListing(title, price, description string, images []Image, videoURL string, now time.Time) (*Listing, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	p, err := NewPrice(price)
	if err != nil {
		return nil, err
	}
	d, err := NewDescription(description)
	if err != nil {
		return nil, err
	}
	v, err := NewVideoURL(videoURL)
	if err != nil {
		return nil, err
	}

	return &Listing{
		id:          uuid.New(),
		title:       t,
		price:       p,
		description: d,
		images:      append([]Image(nil), images...),
		videoURL:    v,
		createdAt:   now,
	}, nil
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) Title() Title             { return l.title }
func (l *Listing) Price() Price             { return l.price }
func (l *Listing) Description() Description { return l.description }
func (l *Listing) Images() []Image          { return append([]Image(nil), l.images...) }
func (l *Listing) VideoURL() VideoURL       { return l.videoURL }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
