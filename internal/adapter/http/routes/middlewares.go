package routes

import (
	"net/http"
	"strings"
	"time"

	"mensalidade_pix/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func setMiddlewares(router *gin.Engine) {
	router.Use(requestID())
	router.Use(accessLog())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.LoggerWithContext(logrus.WithField("module", "http"), c).
			WithField("panic", recovered).
			Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// requestID propagates X-Request-ID, generating one when the caller did not
// send it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(logging.HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Header(logging.HeaderRequestID, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := logrus.WithFields(logrus.Fields{
			"request_id": logging.RequestIDFromContext(c.Request.Context()),
			"remote_ip":  c.ClientIP(),
			"method":     c.Request.Method,
			"uri":        c.Request.URL.RequestURI(),
			"status":     c.Writer.Status(),
			"latency":    latency.String(),
			"latency_ns": latency.Nanoseconds(),
			"user_agent": c.Request.UserAgent(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}
		entry.Info("http_request")
	}
}

// corsMiddleware answers browsers calling the API from the members app. An
// empty origin allows any.
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	origin := strings.TrimSpace(allowedOrigin)
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+logging.HeaderRequestID)
		h.Set("Access-Control-Expose-Headers", logging.HeaderRequestID)
		if origin != "*" {
			h.Add("Vary", "Origin")
		}
		c.Next()
	}
}
