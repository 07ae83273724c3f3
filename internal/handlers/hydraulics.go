package handlers

import (
	"errors"
	"net/http"

	"pump_sizing"
	"pump_sizing/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondCalcError maps engine sentinels onto HTTP codes: bad input is the
// caller's fault, a missing intersection is a valid request with no answer,
// anything else is ours.
func (h *Handler) respondCalcError(c *gin.Context, logKey string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrMissingData):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoOperatingPoint):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "calculation failed", logKey, err)
	}
}

// Fluid selection payload. Explicit density and viscosity bypass the
// built-in water table.
type fluidRequest struct {
	TemperatureC  float64 `json:"temperature_c"`
	Density       float64 `json:"density_kg_m3,omitempty"`
	KinematicVisc float64 `json:"kinematic_visc_m2_s,omitempty"`
	VaporPressure float64 `json:"vapor_pressure_pa,omitempty"`
}

// Request DTO for a single system evaluation.
type systemRequest struct {
	Fluid       fluidRequest              `json:"fluid"`
	Segment     pump_sizing.PipeSegment   `json:"segment" binding:"required"`
	Material    string                    `json:"material,omitempty"`
	Fittings    []pump_sizing.FittingLoss `json:"fittings,omitempty"`
	StaticHeadM float64                   `json:"static_head_m"`
	FlowRate    float64                   `json:"flow_rate_m3_s"`
}

func (r systemRequest) toParams() service.SystemParams {
	return service.SystemParams{
		Fluid: service.FluidSpec{
			TemperatureC:  r.Fluid.TemperatureC,
			Density:       r.Fluid.Density,
			KinematicVisc: r.Fluid.KinematicVisc,
			VaporPressure: r.Fluid.VaporPressure,
		},
		Segment:     r.Segment,
		Material:    r.Material,
		Fittings:    r.Fittings,
		StaticHeadM: r.StaticHeadM,
		FlowRate:    r.FlowRate,
	}
}

type systemCurveRequest struct {
	systemRequest
	QMax   float64 `json:"q_max_m3_s" binding:"required"`
	Points int     `json:"points,omitempty"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Calculate system head loss
// @Description  Major, minor and static head at one flow rate, with the friction breakdown
// @Tags         hydraulics
// @Accept       json
// @Produce      json
// @Param        body  body   systemRequest  true  "System payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/hydraulics/system [post]
// @Security     BearerAuth
func (h *Handler) calculateSystem(c *gin.Context) {
	var req systemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.Hydraulics.CalculateSystem(c.Request.Context(), req.toParams())
	if err != nil {
		h.respondCalcError(c, "hydraulics_system_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Sweep the system curve
// @Description  Total system head from zero flow to q_max on a uniform grid
// @Tags         hydraulics
// @Accept       json
// @Produce      json
// @Param        body  body   systemCurveRequest  true  "Sweep payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/hydraulics/system-curve [post]
// @Security     BearerAuth
func (h *Handler) systemCurve(c *gin.Context) {
	var req systemCurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.Hydraulics.SystemCurve(c.Request.Context(), service.SystemCurveParams{
		System: req.toParams(),
		QMax:   req.QMax,
		Points: req.Points,
	})
	if err != nil {
		h.respondCalcError(c, "hydraulics_system_curve_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
