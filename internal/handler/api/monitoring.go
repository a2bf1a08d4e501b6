package api

import (
	"net/http"

	resdto "coupon-issuance/internal/handler/dto/response"
	"coupon-issuance/internal/handler/httperr"
	"coupon-issuance/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MonitoringHandler struct {
	q queries.MonitoringQueries
}

func NewMonitoringHandler(q queries.MonitoringQueries) *MonitoringHandler {
	return &MonitoringHandler{q: q}
}

func (h *MonitoringHandler) Failures(c *gin.Context) {
	counts, err := h.q.FailureCounts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count failure records", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusCounts(counts))
}

func (h *MonitoringHandler) Outbox(c *gin.Context) {
	counts, err := h.q.OutboxCounts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count outbox events", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusCounts(counts))
}
