package web

import (
	"strings"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	// Add security headers
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("X-XSS-Protection", "1; mode=block")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Content Security Policy
	// Story banners may dismiss through inline onclick handlers
	csp := []string{
		"default-src 'self'",
		"script-src 'self' 'unsafe-inline' https://unpkg.com", // htmx
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	// Log request details
	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"ip", c.Request().Header("X-Forwarded-For"),
	)

	// Process request
	err := c.Next()

	// Log response details
	duration := time.Since(start)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "request failed"),
			"method", c.Request().Method(),
			"path", c.Request().Path(),
			"duration", duration.String(),
		)
		return err
	}
	logger.Info("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"status", c.Response().Status(),
		"duration", duration.String(),
	)

	return err
}
