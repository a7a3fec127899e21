package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/heyemlee/quicklink-app/docs"
	"github.com/heyemlee/quicklink-app/internal/auth"
	"github.com/heyemlee/quicklink-app/internal/domain"
	"github.com/heyemlee/quicklink-app/internal/dto"
	"github.com/heyemlee/quicklink-app/internal/logger"
	"github.com/heyemlee/quicklink-app/internal/service"
)

// Pinger reports whether the event store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Dependencies struct {
	Events    service.EventServicer
	Analytics service.AnalyticsServicer
	Store     Pinger
	Sessions  auth.SessionResolver
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

type Handler struct {
	events    service.EventServicer
	analytics service.AnalyticsServicer
	store     Pinger
	sessions  auth.SessionResolver
	metrics   http.Handler
	router    *gin.Engine
	startedAt time.Time
	log       *zap.Logger
}

func NewHandler(deps Dependencies, log *zap.Logger) *Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(log))

	h := &Handler{
		events:    deps.Events,
		analytics: deps.Analytics,
		store:     deps.Store,
		sessions:  deps.Sessions,
		metrics:   deps.Metrics,
		router:    router,
		startedAt: time.Now(),
		log:       log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/analytics", h.trackEvent)
	h.router.GET("/analytics", auth.RequireOwner(h.sessions, h.log), h.getAnalytics)
	h.router.GET("/analytics/default-owner", h.getDefaultOwner)
	if h.metrics != nil {
		h.router.GET("/metrics", gin.WrapH(h.metrics))
	}
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check that the service is running and the event store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   logger.ServiceName,
		Database:  "connected",
		Uptime:    time.Since(h.startedAt).Seconds(),
	}

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		response.Status = "unhealthy"
		response.Database = "disconnected"
		response.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// trackEvent handles POST /analytics
// @Summary Record a visitor event
// @Description Record a page view, contact save or platform click on an owner's public card
// @Tags analytics
// @Accept json
// @Produce json
// @Param event body dto.TrackEventRequest true "Event data"
// @Success 200 {object} dto.TrackEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics [post]
func (h *Handler) trackEvent(c *gin.Context) {
	var req dto.TrackEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "request body must be a JSON object",
		})
		return
	}

	id, err := h.events.TrackEvent(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "failed to record event",
			zap.String("slug", req.Slug),
			zap.String("event_type", req.EventType))
		return
	}

	h.log.Debug("Event recorded",
		zap.String("event_id", id),
		zap.String("event_type", req.EventType))

	c.JSON(http.StatusOK, dto.TrackEventResponse{
		Success: true,
		ID:      id,
	})
}

// getAnalytics handles GET /analytics
// @Summary Get the owner's analytics report
// @Description Summary counts, platform rankings, trends and recent activity for the signed-in owner
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param year query int false "Calendar year" example:"2025"
// @Param month query int false "Month 1-12, read only with year" example:"6"
// @Param all query string false "true selects all time" example:"true"
// @Success 200 {object} analytics.Report
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	ownerID, ok := auth.OwnerID(c)
	if !ok {
		h.writeError(c, domain.ErrUnauthorized, "")
		return
	}

	var query dto.AnalyticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.log.Warn("Invalid analytics query", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	report, err := h.analytics.GetAnalytics(c.Request.Context(), ownerID, &query)
	if err != nil {
		h.writeError(c, err, "failed to build analytics report",
			zap.String("owner_id", ownerID))
		return
	}

	c.JSON(http.StatusOK, report)
}

// getDefaultOwner handles GET /analytics/default-owner
// @Summary Get the default public owner
// @Description Slug of the owner shown on the public home page
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.DefaultOwnerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/default-owner [get]
func (h *Handler) getDefaultOwner(c *gin.Context) {
	slug, err := h.analytics.DefaultOwnerSlug(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "failed to resolve default owner")
		return
	}

	c.JSON(http.StatusOK, dto.DefaultOwnerResponse{Slug: slug})
}

// writeError maps service errors onto status codes. Client errors carry
// their own message; anything else is logged and answered with internalMsg.
func (h *Handler) writeError(c *gin.Context, err error, internalMsg string, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: domain.ErrOwnerNotFound.Error(),
		})
	case domain.IsClientError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "unauthorized",
			Message: "a valid owner session is required",
		})
	default:
		h.log.Error("Request failed", append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: internalMsg,
		})
	}
}
