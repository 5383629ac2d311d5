package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"gradpath/cmd/internal/logger"
	"gradpath/cmd/internal/trace"
)

const (
	HeaderRequestID = "X-Request-Id"
	HeaderSpanID    = "X-Span-Id"
)

// RequestTrace makes sure every inbound request carries a request ID, exposes it
// on the response, and logs the request once the handler chain completes.
// service is written to the log record as service_name.
func RequestTrace(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		// inbound span is 0; outbound calls made while serving it count up from 1
		ctxWithTrace := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctxWithTrace)

		currentSpan := trace.CurrentSpanID(ctxWithTrace)
		c.Request.Header.Set(HeaderRequestID, requestID)
		c.Request.Header.Set(HeaderSpanID, currentSpan)
		c.Writer.Header().Set(HeaderRequestID, requestID)
		c.Writer.Header().Set(HeaderSpanID, currentSpan)

		queryParams := map[string][]string{}
		for key, values := range req.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}

		c.Next()

		fields := logger.Fields{
			"method":       req.Method,
			"path":         req.URL.Path,
			"route":        c.FullPath(),
			"query_params": queryParams,
			"status":       c.Writer.Status(),
			"duration":     time.Since(start).String(),
			"request_id":   requestID,
			"span_id":      trace.CurrentSpanID(c.Request.Context()),
		}
		if service != "" {
			fields["service_name"] = service
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
			logger.WarnWithFields("completed request", fields)
			return
		}
		logger.InfoWithFields("completed request", fields)
	}
}
