package api

import (
	"errors"
	"net/http"

	"sdi-showcase/internal/handler/httperr"
	"sdi-showcase/internal/infra/blobstore"

	"github.com/gin-gonic/gin"
)

var errBlobNotFound = errors.New("blob not found")

type BlobReader interface {
	Get(handle string) (blobstore.Blob, bool, error)
}

type BlobHandler struct {
	blobs BlobReader
}

func NewBlobHandler(blobs BlobReader) *BlobHandler {
	return &BlobHandler{blobs: blobs}
}

// @Summary Attached image
// @Description Serves an image attached to a listing draft. Gone after a restart.
// @Tags blobs
// @Produce image/png,image/jpeg,image/gif,image/webp
// @Param handle path string true "Blob id"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /blobs/{handle} [get]
func (h *BlobHandler) Get(c *gin.Context) {
	blob, ok, err := h.blobs.Get(c.Param("handle"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errBlobNotFound, "Not found", nil)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, blob.ContentType, blob.Data)
}
