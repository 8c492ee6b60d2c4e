package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// ListingRM is also the persisted shape of one entry in the listings slot.
type ListingRM struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Images      []ImageRM `json:"images"`
	VideoURL    string    `json:"videoURL"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ImageRM.URL is a transient display handle; it does not survive a restart.
type ImageRM struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
