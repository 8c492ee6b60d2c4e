package api

import (
	"net/http"

	reqdto "sdi-showcase/internal/handler/dto/request"
	resdto "sdi-showcase/internal/handler/dto/response"
	"sdi-showcase/internal/handler/httperr"
	"sdi-showcase/internal/pkg/videourl"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct{}

func NewVideoHandler() *VideoHandler {
	return &VideoHandler{}
}

// @Summary Embed URL for a video link
// @Description YouTube and Vimeo links become player URLs; anything else comes back unchanged
// @Tags video
// @Produce json
// @Param url query string true "Video URL"
// @Success 200 {object} resdto.EmbedVideoResponse
// @Failure 400 {object} httperr.Response
// @Router /video/embed [get]
func (h *VideoHandler) Embed(c *gin.Context) {
	var req reqdto.EmbedVideoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.EmbedVideoResponse{
		URL:        req.URL,
		EmbedURL:   videourl.Normalize(req.URL),
		Embeddable: videourl.IsEmbeddable(req.URL),
	})
}
