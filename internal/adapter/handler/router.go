package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	dto "github.com/johnquangdev/client-meetings/internal/adapter/dto/meeting"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/metrics"
	"github.com/johnquangdev/client-meetings/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	metrics        *metrics.Metrics
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, m *metrics.Metrics) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		metrics:        m,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	if rt.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metrics.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", RequestContext())
	rt.setupMeetingRoutes(api)
}

// setupMeetingRoutes configures meeting, report and email routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.GET("", rt.meetingHandler.ListAll)
	meetings.POST("/process", rt.meetingHandler.Process)
	meetings.POST("/save", rt.meetingHandler.Save)
	meetings.POST("/discovery-report", rt.meetingHandler.GenerateDiscoveryReport)
	meetings.GET("/:clientId", rt.meetingHandler.ListByClient)
	meetings.DELETE("/:clientId/:meetingId", rt.meetingHandler.Delete)
	meetings.GET("/:clientId/:meetingId/discovery-report", rt.meetingHandler.GetDiscoveryReport)
	meetings.POST("/:clientId/:meetingId/send-email", rt.meetingHandler.SendEmail)
}

// healthCheck returns health status
// @Summary  Health check
// @Tags     System
// @Produce  json
// @Success  200  {object}  meeting.HealthResponse
// @Router   /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := &dto.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.Provider = rt.cfg.AI.Provider
		resp.NoteStore = rt.cfg.NoteStore.Backend
	}
	return c.JSON(http.StatusOK, resp)
}
