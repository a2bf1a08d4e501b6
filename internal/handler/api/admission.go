package api

import (
	"net/http"

	resdto "coupon-issuance/internal/handler/dto/response"
	"coupon-issuance/internal/handler/httperr"
	"coupon-issuance/internal/usecase/commands"
	"coupon-issuance/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdmissionHandler struct {
	cmds commands.AdmissionCommands
	q    queries.MonitoringQueries
}

func NewAdmissionHandler(cmds commands.AdmissionCommands, q queries.MonitoringQueries) *AdmissionHandler {
	return &AdmissionHandler{cmds: cmds, q: q}
}

// Admit decides synchronously; persistence happens later. 202 means the grant
// is queued, not yet durable.
func (h *AdmissionHandler) Admit(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign id", nil)
		return
	}
	userID, err := uuid.Parse(c.GetHeader("X-User-ID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing X-User-ID header", nil)
		return
	}

	status, err := h.cmds.TryAdmit(c.Request.Context(), userID, campaignID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Admission failed", nil)
		return
	}

	resp := resdto.FromAdmissionStatus(status)
	switch status {
	case commands.StatusGranted:
		c.JSON(http.StatusAccepted, resp)
	case commands.StatusDuplicate:
		c.JSON(http.StatusOK, resp)
	case commands.StatusExhausted, commands.StatusCampaignInactive:
		c.JSON(http.StatusConflict, resp)
	case commands.StatusCampaignNotFound:
		c.JSON(http.StatusNotFound, resp)
	default:
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func (h *AdmissionHandler) QueueDepth(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign id", nil)
		return
	}

	depth, err := h.q.QueueDepth(c.Request.Context(), campaignID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read queue depth", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.QueueDepthResponse{CampaignID: campaignID.String(), Depth: depth})
}

func (h *AdmissionHandler) ResetCoordinator(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign id", nil)
		return
	}

	if err := h.cmds.ResetCoordinator(c.Request.Context(), campaignID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reset coordinator", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
