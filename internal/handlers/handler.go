package handlers

import (
	"pump_sizing/internal/logger"
	"pump_sizing/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	allowedOrigins map[string]struct{}
}

// NewHandler constructs a new HTTP handler with dependencies. allowedOrigins
// restricts browser WebSocket handshakes; empty permits any origin.
func NewHandler(services *service.Service, log *logger.Logger, allowedOrigins []string) *Handler {
	h := &Handler{services: services, log: log}
	if len(allowedOrigins) > 0 {
		h.allowedOrigins = make(map[string]struct{}, len(allowedOrigins))
		for _, o := range allowedOrigins {
			h.allowedOrigins[o] = struct{}{}
		}
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// WebSocket stream of the latest run, same port (HTTP upgrade)
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerHydraulicsRoutes(api)
		h.registerPumpRoutes(api)
		h.registerComplianceRoutes(api)
		h.registerRunRoutes(api)
	}
}

func (h *Handler) registerHydraulicsRoutes(api *gin.RouterGroup) {
	hyd := api.Group("/hydraulics")
	{
		hyd.POST("/system", h.calculateSystem)
		hyd.POST("/system-curve", h.systemCurve)
	}
}

func (h *Handler) registerPumpRoutes(api *gin.RouterGroup) {
	pump := api.Group("/pump")
	{
		pump.POST("/curve", h.fitCurve)
		pump.POST("/affinity", h.scaleCurve)
		pump.POST("/operating-point", h.operatingPoint)
		pump.POST("/npsh", h.evaluateNPSH)
		pump.POST("/report", h.report)
	}
}

func (h *Handler) registerComplianceRoutes(api *gin.RouterGroup) {
	api.POST("/compliance/check", h.checkCompliance)
}

func (h *Handler) registerRunRoutes(api *gin.RouterGroup) {
	runs := api.Group("/runs")
	{
		runs.GET("/", h.getRuns)
		runs.GET("/latest", h.getLatestRun)
	}
}
