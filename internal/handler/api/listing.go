package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	reqdto "sdi-showcase/internal/handler/dto/request"
	resdto "sdi-showcase/internal/handler/dto/response"
	"sdi-showcase/internal/handler/httperr"
	"sdi-showcase/internal/pkg/config"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/queries"
	"sdi-showcase/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const imagesFormField = "images"

type ListingHandler struct {
	cmds   commands.ListingCommands
	q      queries.ListingQueries
	upload config.UploadConfig
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries, upload config.UploadConfig) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q, upload: upload}
}

// @Summary List listings
// @Description All published listings, newest first
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromListingRMs(h.q.List(c.Request.Context())))
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	rm, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingRM(rm))
}

// @Summary Publish listing
// @Description Submits the listing draft. A JSON body, when present, replaces the draft's text fields first.
// @Tags listings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateListingRequest false "Listing fields"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var fields *commands.ListingFields
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	} else {
		fields = req.ToFields()
	}

	rm, err := h.cmds.Submit(c.Request.Context(), fields)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/listings/"+rm.ID.String())
	c.JSON(http.StatusCreated, resdto.FromListingRM(rm))
}

// @Summary Remove listing
// @Description Removing an unknown id is not an error
// @Tags listings
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if _, err := h.cmds.Remove(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Export listing
// @Description JSON text of one listing, for the clipboard
// @Tags listings
// @Produce plain
// @Param id path string true "Listing ID"
// @Success 200 {string} string
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/export [get]
func (h *ListingHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	b, err := h.q.Export(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", b)
}

// @Summary Get listing draft
// @Tags listings
// @Produce json
// @Success 200 {object} resdto.ListingDraftResponse
// @Router /listings/draft [get]
func (h *ListingHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromListingDraft(h.q.Draft(c.Request.Context())))
}

// @Summary Edit listing draft
// @Tags listings
// @Accept json
// @Produce json
// @Param request body reqdto.PatchListingDraftRequest true "Fields to change"
// @Success 200 {object} resdto.ListingDraftResponse
// @Failure 400 {object} httperr.Response
// @Router /listings/draft [patch]
func (h *ListingHandler) PatchDraft(c *gin.Context) {
	var req reqdto.PatchListingDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	d := h.cmds.PatchDraft(c.Request.Context(), req.ToPatch())
	c.JSON(http.StatusOK, resdto.FromListingDraft(d))
}

// @Summary Clear listing draft
// @Tags listings
// @Produce json
// @Success 200 {object} resdto.ListingDraftResponse
// @Router /listings/draft [delete]
func (h *ListingHandler) ResetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromListingDraft(h.cmds.ResetDraft(c.Request.Context())))
}

// @Summary Attach images to listing draft
// @Description Appends to earlier attachments. Handles live only as long as the process.
// @Tags listings
// @Accept mpfd
// @Produce json
// @Param images formData file true "Image files"
// @Success 200 {object} resdto.ListingDraftResponse
// @Failure 400 {object} httperr.Response
// @Router /listings/draft/images [post]
func (h *ListingHandler) AttachImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid multipart form", nil)
		return
	}
	files := form.File[imagesFormField]
	if h.upload.MaxFiles > 0 && len(files) > h.upload.MaxFiles {
		err := fmt.Errorf("%d files selected, at most %d allowed", len(files), h.upload.MaxFiles)
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Too many files", err.Error())
		return
	}

	uploads := make([]shared.ImageUpload, 0, len(files))
	for _, fh := range files {
		up, err := h.readUpload(fh)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid file", err.Error())
			return
		}
		uploads = append(uploads, up)
	}

	d, err := h.cmds.AttachImages(c.Request.Context(), uploads)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingDraft(d))
}

func (h *ListingHandler) readUpload(fh *multipart.FileHeader) (shared.ImageUpload, error) {
	if h.upload.MaxImageBytes > 0 && fh.Size > h.upload.MaxImageBytes {
		return shared.ImageUpload{}, fmt.Errorf("%s exceeds %d bytes", fh.Filename, h.upload.MaxImageBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return shared.ImageUpload{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return shared.ImageUpload{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return shared.ImageUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
