package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/parcel-service/internal/platform/config"
	"github.com/jsamuelsen11/parcel-service/internal/platform/logging"
	"github.com/jsamuelsen11/parcel-service/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response):
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// StackOptions configures the server middleware stack.
type StackOptions struct {
	Logger *slog.Logger
	// Metrics may be nil when telemetry is disabled.
	Metrics *telemetry.Metrics
	CORS    config.CORSConfig
	// RequestTimeout of zero disables the Timeout middleware.
	RequestTimeout time.Duration
}

// Stack returns the server middleware in execution order. Recovery is
// outermost and also sees panics raised in the Timeout goroutine. Preflight
// requests are answered by CORS before any deadline applies.
func Stack(opts StackOptions) []func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(opts.Metrics),
		Logging(logger),
		CORS(opts.CORS),
		Timeout(opts.RequestTimeout),
	}
}
