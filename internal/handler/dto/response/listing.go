package response

import (
	"time"

	"sdi-showcase/internal/pkg/videourl"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ImageResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ListingResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Price       string          `json:"price"`
	Description string          `json:"description"`
	Images      []ImageResponse `json:"images"`
	VideoURL    string          `json:"videoUrl,omitempty"`
	EmbedURL    string          `json:"embedUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ListingDraftResponse struct {
	Title       string          `json:"title"`
	Price       string          `json:"price"`
	Description string          `json:"description"`
	Images      []ImageResponse `json:"images"`
	VideoURL    string          `json:"videoUrl"`
	EmbedURL    string          `json:"embedUrl,omitempty"`
}

func FromListingRM(rm *readmodel.ListingRM) *ListingResponse {
	return &ListingResponse{
		ID:          rm.ID,
		Title:       rm.Title,
		Price:       rm.Price,
		Description: rm.Description,
		Images:      fromImageRMs(rm.Images),
		VideoURL:    rm.VideoURL,
		EmbedURL:    embedURL(rm.VideoURL),
		CreatedAt:   rm.CreatedAt,
	}
}

func FromListingRMs(rms []readmodel.ListingRM) []*ListingResponse {
	out := make([]*ListingResponse, len(rms))
	for i := range rms {
		out[i] = FromListingRM(&rms[i])
	}
	return out
}

func FromListingDraft(d forms.ListingDraft) *ListingDraftResponse {
	return &ListingDraftResponse{
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Images:      fromImageRMs(d.Images),
		VideoURL:    d.VideoURL,
		EmbedURL:    embedURL(d.VideoURL),
	}
}

func fromImageRMs(images []readmodel.ImageRM) []ImageResponse {
	out := make([]ImageResponse, len(images))
	for i, img := range images {
		out[i] = ImageResponse{Name: img.Name, URL: img.URL}
	}
	return out
}

func embedURL(raw string) string {
	if raw == "" {
		return ""
	}
	return videourl.Normalize(raw)
}
