package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/nested-comments/internal/middleware"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// check is one dependency probe in the /status body.
type check struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string           `json:"status"`
	Timestamp   time.Time        `json:"timestamp"`
	Environment string           `json:"environment"`
	Storage     string           `json:"storage"`
	Checks      map[string]check `json:"checks"`
}

// CheckHealth probes the configured dependencies. A failing database makes
// the service unhealthy (503); a failing Redis is reported but tolerated,
// since the rate limiter lets requests through without it.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: cfg.Primary.Env,
		Storage:     cfg.Storage.Driver,
		Checks:      map[string]check{},
	}

	timeout := 5 * time.Second
	if cfg.Observability != nil {
		timeout = cfg.Observability.HealthChecks.Timeout
	}

	if h.server.DB != nil && h.enabled("database") {
		result := h.probe(c.Request().Context(), timeout, "database", func(ctx context.Context) error {
			return h.server.DB.Pool.Ping(ctx)
		})
		response.Checks["database"] = result
		if result.Status != "healthy" {
			response.Status = "unhealthy"
		}
	}

	if h.server.Redis != nil && h.enabled("redis") {
		response.Checks["redis"] = h.probe(c.Request().Context(), timeout, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordFailure(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) enabled(name string) bool {
	if h.server.Config.Observability == nil {
		return true
	}
	return h.server.Config.Observability.HealthCheckEnabled(name)
}

func (h *HealthHandler) probe(parent context.Context, timeout time.Duration, name string, ping func(ctx context.Context) error) check {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	logger := h.server.Logger.With().Str("check", name).Logger()

	started := time.Now()
	err := ping(ctx)
	elapsed := time.Since(started)

	if err != nil {
		logger.Error().Err(err).Dur("response_time", elapsed).Msg("health check failed")

		h.recordFailure(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return check{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	logger.Debug().Dur("response_time", elapsed).Msg("health check passed")
	return check{Status: "healthy", ResponseTime: elapsed.String()}
}

func (h *HealthHandler) recordFailure(attrs map[string]interface{}) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
