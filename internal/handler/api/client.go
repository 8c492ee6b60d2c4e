package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "sdi-showcase/internal/handler/dto/request"
	resdto "sdi-showcase/internal/handler/dto/response"
	"sdi-showcase/internal/handler/httperr"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	cmds commands.ClientCommands
	q    queries.ClientQueries
}

func NewClientHandler(cmds commands.ClientCommands, q queries.ClientQueries) *ClientHandler {
	return &ClientHandler{cmds: cmds, q: q}
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} resdto.ClientResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromClientRMs(h.q.List(c.Request.Context())))
}

// @Summary Register client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body reqdto.CreateClientRequest false "Client fields"
// @Success 201 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var fields *commands.ClientFields
	var req reqdto.CreateClientRequest
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
	c.JSON(http.StatusCreated, resdto.FromClientRM(rm))
}

// @Summary Export clients
// @Description JSON text of the whole client list, for the clipboard
// @Tags clients
// @Produce plain
// @Success 200 {string} string
// @Router /clients/export [get]
func (h *ClientHandler) Export(c *gin.Context) {
	b, err := h.q.Export(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", b)
}

// @Summary Get client draft
// @Tags clients
// @Produce json
// @Success 200 {object} resdto.ClientDraftResponse
// @Router /clients/draft [get]
func (h *ClientHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromClientDraft(h.q.Draft(c.Request.Context())))
}

// @Summary Edit client draft
// @Tags clients
// @Accept json
// @Produce json
// @Param request body reqdto.PatchClientDraftRequest true "Fields to change"
// @Success 200 {object} resdto.ClientDraftResponse
// @Failure 400 {object} httperr.Response
// @Router /clients/draft [patch]
func (h *ClientHandler) PatchDraft(c *gin.Context) {
	var req reqdto.PatchClientDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientDraft(h.cmds.PatchDraft(c.Request.Context(), req.ToPatch())))
}

// @Summary Clear client draft
// @Tags clients
// @Produce json
// @Success 200 {object} resdto.ClientDraftResponse
// @Router /clients/draft [delete]
func (h *ClientHandler) ResetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromClientDraft(h.cmds.ResetDraft(c.Request.Context())))
}
