package request

type EmbedVideoRequest struct {
	URL string `form:"url" binding:"required"`
}
