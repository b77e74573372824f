package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
)

// ContextKeyAuthenticated is set to true when the request carried an
// accepted bearer token.
const ContextKeyAuthenticated = "authenticated"

const bearerPrefix = "bearer "

// Bearer token problems reported by BearerWarning.
const (
	authMissing      = "missing"
	authMalformed    = "malformed"
	authUnrecognized = "unrecognized"
)

// BearerWarning checks the advisor's bearer token and logs a warning when it
// is missing, malformed, or not one of cfg.Tokens. It never rejects the
// request: authentication is not enforced.
func BearerWarning(cfg *config.AuthConfig, logger *slog.Logger) gin.HandlerFunc {
	header := config.DefaultAuthHeader

	var tokens []string

	if cfg != nil {
		if cfg.Header != "" {
			header = cfg.Header
		}

		tokens = cfg.Tokens
	}

	return func(c *gin.Context) {
		problem := checkBearer(c.GetHeader(header), tokens)
		c.Set(ContextKeyAuthenticated, problem == "")

		if problem != "" {
			ctx := c.Request.Context()
			logging.FromContextOr(ctx, logger).WarnContext(ctx, "request is not authenticated",
				slog.String("reason", problem),
				slog.String("header", header),
				slog.String("path", c.Request.URL.Path),
			)
		}

		c.Next()
	}
}

// IsAuthenticated reports whether BearerWarning accepted the request's token.
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(ContextKeyAuthenticated)
}

// checkBearer returns an empty string for an accepted token. An empty token
// list accepts any well-formed token.
func checkBearer(value string, tokens []string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return authMissing
	}

	if len(value) <= len(bearerPrefix) || !strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return authMalformed
	}

	token := strings.TrimSpace(value[len(bearerPrefix):])
	if token == "" {
		return authMalformed
	}

	if len(tokens) > 0 && !slices.Contains(tokens, token) {
		return authUnrecognized
	}

	return ""
}
