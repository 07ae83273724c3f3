package handlers

import (
	"net/http"

	"pump_sizing/internal/service"

	"github.com/gin-gonic/gin"
)

type complianceRequest struct {
	Rules []service.Rule `json:"rules" binding:"required"`
}

// @Summary      Check standards compliance
// @Description  Evaluates velocity windows (ISO 15649), erosional velocity (API RP 14E), pressure classes (ASME B16.5 / EN 1092) and pipe sizing (ISO 6708)
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Param        body  body   complianceRequest  true  "Rules to evaluate"
// @Success      200   {object}  map[string]interface{}  "count, results"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/compliance/check [post]
// @Security     BearerAuth
func (h *Handler) checkCompliance(c *gin.Context) {
	var req complianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	results, err := h.services.Compliance.Check(c.Request.Context(), req.Rules)
	if err != nil {
		h.respondCalcError(c, "compliance_check_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}
