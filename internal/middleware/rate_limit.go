package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/deppfellow/nested-comments/internal/errs"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// RedisRateLimitTimeout bounds one limiter round-trip to Redis.
const RedisRateLimitTimeout = 500 * time.Millisecond

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit enforces server.rate_limit requests per second per client IP. The
// counters live in Redis when a client is configured, in process memory
// otherwise. A zero rate disables the limiter.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	limit := r.server.Config.Server.RateLimit
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	var store middleware.RateLimiterStore
	if r.server.Redis != nil {
		store = NewRedisRateLimiterStore(r.server.Redis, limit, r.server.Logger)
	} else {
		store = middleware.NewRateLimiterMemoryStore(rate.Limit(limit))
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewBadRequestError("Unable to identify client", false, nil, nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			return &errs.HTTPError{
				Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
				Message: "Too many requests",
				Status:  http.StatusTooManyRequests,
			}
		},
	})
}

// RecordRateLimitHit sends a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}

// RedisRateLimiterStore counts requests per identifier in one-second
// windows shared by every instance using the same Redis.
type RedisRateLimiterStore struct {
	client *redis.Client
	burst  int64
	logger *zerolog.Logger
	now    func() time.Time
}

func NewRedisRateLimiterStore(client *redis.Client, perSecond float64, logger *zerolog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client: client,
		burst:  int64(math.Max(1, math.Ceil(perSecond))),
		logger: logger,
		now:    time.Now,
	}
}

// Allow implements middleware.RateLimiterStore. Redis failures are logged
// and let the request through.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), RedisRateLimitTimeout)
	defer cancel()

	key := fmt.Sprintf("ratelimit:%s:%d", identifier, s.now().Unix())

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn().Err(err).Str("identifier", identifier).Msg("rate limiter unavailable, allowing request")
		return true, nil
	}

	return count.Val() <= s.burst, nil
}
