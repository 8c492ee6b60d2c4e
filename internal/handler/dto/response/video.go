package response

type EmbedVideoResponse struct {
	URL        string `json:"url"`
	EmbedURL   string `json:"embedUrl"`
	Embeddable bool   `json:"embeddable"`
}
