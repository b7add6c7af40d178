package middleware

import (
	"time"

	"github.com/vayload/contact-validator/pkg/httpi"
	"github.com/vayload/contact-validator/pkg/logger"
)

// NewRequestLogger writes one access log entry per request. Errors are left
// to the error handler, which also logs them.
func NewRequestLogger(log logger.Logger) httpi.HttpHandler {
	return func(req httpi.HttpRequest, res httpi.HttpResponse) error {
		start := time.Now()
		err := req.Next()
		if err != nil {
			return err
		}

		log.Info("request", logger.Fields{
			"request_id": req.RequestID(),
			"method":     req.GetMethod(),
			"path":       req.GetPath(),
			"status":     res.GetStatus(),
			"latency_ms": time.Since(start).Milliseconds(),
			"user_agent": req.GetUserAgent(),
		})

		return nil
	}
}
