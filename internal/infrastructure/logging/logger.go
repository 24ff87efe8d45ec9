package logging

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// Configure sets the global logrus level and formatter.
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}

func NewModuleLogger(module string) *logrus.Entry {
	return logrus.WithField("module", module)
}

// WithRequestID stores the request id so lower layers can tag their logs.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// FromContext returns logger tagged with the request id carried by ctx, if any.
func FromContext(ctx context.Context, logger *logrus.Entry) *logrus.Entry {
	if id := RequestIDFromContext(ctx); id != "" {
		return logger.WithField("request_id", id)
	}
	return logger
}

func LoggerWithContext(logger *logrus.Entry, c *gin.Context) *logrus.Entry {
	if c == nil || c.Request == nil {
		return logger
	}
	entry := FromContext(c.Request.Context(), logger)
	if RequestIDFromContext(c.Request.Context()) == "" {
		if id := strings.TrimSpace(c.GetHeader(HeaderRequestID)); id != "" {
			entry = entry.WithField("request_id", id)
		}
	}
	return entry
}
