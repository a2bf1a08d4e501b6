package api

import (
	"net/http"

	reqdto "coupon-issuance/internal/handler/dto/request"
	resdto "coupon-issuance/internal/handler/dto/response"
	"coupon-issuance/internal/handler/httperr"
	"coupon-issuance/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	cmds commands.CampaignCommands
}

func NewCampaignHandler(cmds commands.CampaignCommands) *CampaignHandler {
	return &CampaignHandler{cmds: cmds}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req reqdto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), commands.CreateCampaignInput{
		Name:        req.Name,
		MaxUnits:    req.MaxUnits,
		ActiveFrom:  req.ActiveFrom,
		ActiveUntil: req.ActiveUntil,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create campaign failed", nil)
		return
	}

	c.Header("Location", "/campaigns/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreateCampaignResponse{ID: id.String()})
}
