package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/internal/auditlog"
)

// AuditMiddleware records mutating requests that were rejected (4xx/5xx).
// Successful mutations are logged by the services themselves, so together
// the audit trail covers both outcomes.
func AuditMiddleware(auditSvc auditlog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Writer.Status() < 400 {
			return
		}

		var actor *string
		if id := c.GetString("user_id"); id != "" {
			actor = &id
		}
		details := map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"code":   c.Writer.Status(),
		}
		_ = auditSvc.LogAction(c.Request.Context(), actor, nil, "REQUEST_REJECTED", details, clientIP(c), "FAILURE")
	}
}

// clientIP resolves the real client address behind common reverse proxies.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}
	if xri := c.GetHeader("X-Real-Ip"); xri != "" && net.ParseIP(xri) != nil {
		return xri
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
