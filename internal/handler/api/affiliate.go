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

type AffiliateHandler struct {
	cmds commands.AffiliateCommands
	q    queries.AffiliateQueries
}

func NewAffiliateHandler(cmds commands.AffiliateCommands, q queries.AffiliateQueries) *AffiliateHandler {
	return &AffiliateHandler{cmds: cmds, q: q}
}

// @Summary List affiliates
// @Tags affiliates
// @Produce json
// @Success 200 {array} resdto.AffiliateResponse
// @Router /affiliates [get]
func (h *AffiliateHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromAffiliateRMs(h.q.List(c.Request.Context())))
}

// @Summary Register affiliate
// @Description Submits the affiliate draft and issues a referral code. A JSON body, when present, replaces the draft first.
// @Tags affiliates
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAffiliateRequest false "Affiliate fields"
// @Success 201 {object} resdto.AffiliateResponse
// @Failure 400 {object} httperr.Response
// @Router /affiliates [post]
func (h *AffiliateHandler) Create(c *gin.Context) {
	var fields *commands.AffiliateFields
	var req reqdto.CreateAffiliateRequest
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
	c.JSON(http.StatusCreated, resdto.FromAffiliateRM(rm))
}

// @Summary Get affiliate draft
// @Tags affiliates
// @Produce json
// @Success 200 {object} resdto.AffiliateDraftResponse
// @Router /affiliates/draft [get]
func (h *AffiliateHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromAffiliateDraft(h.q.Draft(c.Request.Context())))
}

// @Summary Edit affiliate draft
// @Tags affiliates
// @Accept json
// @Produce json
// @Param request body reqdto.PatchAffiliateDraftRequest true "Fields to change"
// @Success 200 {object} resdto.AffiliateDraftResponse
// @Failure 400 {object} httperr.Response
// @Router /affiliates/draft [patch]
func (h *AffiliateHandler) PatchDraft(c *gin.Context) {
	var req reqdto.PatchAffiliateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAffiliateDraft(h.cmds.PatchDraft(c.Request.Context(), req.ToPatch())))
}

// @Summary Clear affiliate draft
// @Description Commission goes back to its default
// @Tags affiliates
// @Produce json
// @Success 200 {object} resdto.AffiliateDraftResponse
// @Router /affiliates/draft [delete]
func (h *AffiliateHandler) ResetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromAffiliateDraft(h.cmds.ResetDraft(c.Request.Context())))
}
