package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// getLimiter returns a rate limiter for the given key (usually client IP).
func (app *App) getLimiter(key string) *rate.Limiter {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	if lim, ok := app.LimiterMap[key]; ok {
		return lim
	}

	if key == "" || key == "::1" {
		logWarn("Rate limiter key is empty or loopback: %q", key)
	}
	rps := app.Config.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), app.Config.RateLimitBurst)
	app.LimiterMap[key] = lim
	return lim
}

// rateLimitMiddleware returns a Gin middleware that enforces per-client rate limiting.
func (app *App) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !app.getLimiter(key).Allow() {
			if isHTMX(c) {
				c.Header("HX-Trigger", "rate-limit-exceeded")
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": ErrorTooManyRequests})
			return
		}
		c.Next()
	}
}

// readinessMiddleware rejects game commands while no word list is loaded.
func (app *App) readinessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !app.ready() {
			if isHTMX(c) {
				c.Header("HX-Trigger", "word-source-unavailable")
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": ErrorNotReady})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware injects a request ID and a request-scoped logger into
// the context for each request.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.Request.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		logger := log.With().Str("request_id", reqID).Logger()
		ctx := context.WithValue(c.Request.Context(), requestIDKey, reqID)
		ctx = logger.WithContext(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-Id", reqID)
		c.Next()
	}
}

// accessLogMiddleware writes one line per request.
func accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := requestLogger(c.Request.Context()).Info()
		if status >= http.StatusInternalServerError {
			event = requestLogger(c.Request.Context()).Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// isHTMX reports whether the request came from htmx.
func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
