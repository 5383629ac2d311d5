package httpclient

import (
	"net/http"
	"time"

	"gradpath/cmd/internal/logger"
	"gradpath/cmd/internal/middleware"
	"gradpath/cmd/internal/trace"
)

const defaultTimeout = 10 * time.Second

// Config holds the settings shared by outbound HTTP clients.
type Config struct {
	Timeout time.Duration
	// nil means http.DefaultTransport
	Transport http.RoundTripper
}

// loggingRoundTripper logs every outbound call and stamps it with
// X-Request-Id / X-Span-Id.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	if existing := req.Header.Get(middleware.HeaderRequestID); existing != "" && trace.RequestIDFromContext(req.Context()) == "" {
		requestID = existing
	}

	// a RoundTripper must not modify the caller's request
	out := req.Clone(req.Context())
	out.Header.Set(middleware.HeaderRequestID, requestID)
	out.Header.Set(middleware.HeaderSpanID, spanID)

	fields := logger.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"request_id": requestID,
		"span_id":    spanID,
	}

	resp, err := l.inner.RoundTrip(out)
	fields["duration"] = time.Since(start).String()
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// New returns a logging http.Client for cfg.
// A zero Timeout means 10s.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	inner := cfg.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: inner},
	}
}

// NewDefault returns New(Config{}).
func NewDefault() *http.Client {
	return New(Config{})
}
