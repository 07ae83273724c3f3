package handlers

import (
	"net/http"

	"pump_sizing"
	"pump_sizing/internal/service"

	"github.com/gin-gonic/gin"
)

// Sampled pump curve payload. Head is required; the optional series enable
// power, efficiency and NPSH evaluation downstream.
type curveSamplesRequest struct {
	Head       []pump_sizing.CurvePoint `json:"head" binding:"required"`
	Power      []pump_sizing.CurvePoint `json:"power,omitempty"`
	Efficiency []pump_sizing.CurvePoint `json:"efficiency,omitempty"`
	NPSHR      []pump_sizing.CurvePoint `json:"npshr,omitempty"`
}

func (r curveSamplesRequest) toSamples() service.CurveSamples {
	return service.CurveSamples{
		Head:       r.Head,
		Power:      r.Power,
		Efficiency: r.Efficiency,
		NPSHR:      r.NPSHR,
	}
}

type affinityRequest struct {
	curveSamplesRequest
	Ratio float64 `json:"ratio" binding:"required"`
}

type operatingPointRequest struct {
	System systemRequest       `json:"system" binding:"required"`
	Pump   curveSamplesRequest `json:"pump" binding:"required"`
}

// Suction-side payload for NPSH evaluation. Elevation is the static suction
// lift, negative for a flooded suction.
type suctionRequest struct {
	PressurePa      float64 `json:"pressure_pa" binding:"required"`
	VaporPressurePa float64 `json:"vapor_pressure_pa"`
	VelocityMS      float64 `json:"velocity_m_s"`
	ElevationM      float64 `json:"elevation_m"`
	Density         float64 `json:"density_kg_m3" binding:"required"`
}

func (r suctionRequest) toConditions() service.SuctionConditions {
	return service.SuctionConditions{
		PressurePa:      r.PressurePa,
		VaporPressurePa: r.VaporPressurePa,
		VelocityMS:      r.VelocityMS,
		ElevationM:      r.ElevationM,
		Density:         r.Density,
	}
}

type npshRequest struct {
	Suction   suctionRequest       `json:"suction" binding:"required"`
	RequiredM float64              `json:"required_m,omitempty"`
	Pump      *curveSamplesRequest `json:"pump,omitempty"`
	FlowRate  float64              `json:"flow_rate_m3_s,omitempty"`

	SpeedRPM             float64 `json:"speed_rpm,omitempty"`
	SuctionSpecificSpeed float64 `json:"suction_specific_speed,omitempty"`
}

type reportRequest struct {
	System  systemRequest       `json:"system" binding:"required"`
	Pump    curveSamplesRequest `json:"pump" binding:"required"`
	Suction *suctionRequest     `json:"suction,omitempty"`

	SpeedRPM        float64 `json:"speed_rpm,omitempty"`
	MotorEfficiency float64 `json:"motor_efficiency,omitempty"`
	ServiceFactor   float64 `json:"service_factor,omitempty"`
}

// @Summary      Fit a pump curve
// @Description  Least-squares quadratic fit of the sampled head curve, plus the optional power, efficiency and NPSHr series
// @Tags         pump
// @Accept       json
// @Produce      json
// @Param        body  body   curveSamplesRequest  true  "Sampled curve"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/pump/curve [post]
// @Security     BearerAuth
func (h *Handler) fitCurve(c *gin.Context) {
	var req curveSamplesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.PumpAnalysis.FitCurve(c.Request.Context(), service.CurveFitParams{Samples: req.toSamples()})
	if err != nil {
		h.respondCalcError(c, "pump_fit_curve_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Scale a pump curve
// @Description  Affinity laws for a speed or impeller diameter ratio; ratios outside [0.8, 1.2] are flagged low-confidence
// @Tags         pump
// @Accept       json
// @Produce      json
// @Param        body  body   affinityRequest  true  "Curve and ratio"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/pump/affinity [post]
// @Security     BearerAuth
func (h *Handler) scaleCurve(c *gin.Context) {
	var req affinityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.PumpAnalysis.ScaleCurve(c.Request.Context(), service.AffinityParams{
		Samples: req.toSamples(),
		Ratio:   req.Ratio,
	})
	if err != nil {
		h.respondCalcError(c, "pump_scale_curve_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Find the operating point
// @Description  Intersection of the system curve with the fitted pump curve; 422 when the curves do not cross
// @Tags         pump
// @Accept       json
// @Produce      json
// @Param        body  body   operatingPointRequest  true  "System and pump"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/pump/operating-point [post]
// @Security     BearerAuth
func (h *Handler) operatingPoint(c *gin.Context) {
	var req operatingPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.PumpAnalysis.OperatingPoint(c.Request.Context(), service.OperatingPointParams{
		System: req.System.toParams(),
		Pump:   req.Pump.toSamples(),
	})
	if err != nil {
		h.respondCalcError(c, "pump_operating_point_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Evaluate NPSH
// @Description  Available suction head against the required value, given directly, read from the pump curve at flow_rate_m3_s, or estimated from suction specific speed when speed_rpm is set
// @Tags         pump
// @Accept       json
// @Produce      json
// @Param        body  body   npshRequest  true  "Suction conditions"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/pump/npsh [post]
// @Security     BearerAuth
func (h *Handler) evaluateNPSH(c *gin.Context) {
	var req npshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	params := service.NPSHParams{
		Suction:              req.Suction.toConditions(),
		RequiredM:            req.RequiredM,
		FlowRate:             req.FlowRate,
		SpeedRPM:             req.SpeedRPM,
		SuctionSpecificSpeed: req.SuctionSpecificSpeed,
	}
	if req.Pump != nil {
		samples := req.Pump.toSamples()
		params.Pump = &samples
	}
	res, err := h.services.PumpAnalysis.EvaluateNPSH(c.Request.Context(), params)
	if err != nil {
		h.respondCalcError(c, "pump_npsh_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Full selection report
// @Description  Operating point, loss breakdown at duty, power sizing and classification, optional NPSH and standards checks
// @Tags         pump
// @Accept       json
// @Produce      json
// @Param        body  body   reportRequest  true  "Report payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/pump/report [post]
// @Security     BearerAuth
func (h *Handler) report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	params := service.ReportParams{
		System:          req.System.toParams(),
		Pump:            req.Pump.toSamples(),
		SpeedRPM:        req.SpeedRPM,
		MotorEfficiency: req.MotorEfficiency,
		ServiceFactor:   req.ServiceFactor,
	}
	if req.Suction != nil {
		suction := req.Suction.toConditions()
		params.Suction = &suction
	}
	res, err := h.services.PumpAnalysis.Report(c.Request.Context(), params)
	if err != nil {
		h.respondCalcError(c, "pump_report_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
