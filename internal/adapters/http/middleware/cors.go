package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/parcel-service/internal/platform/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control-* response headers from cfg. Request and correlation ID
// headers are exposed so browser clients can read them.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: cfg.AllowedMethods,
		AllowedHeaders: cfg.AllowedHeaders,
		ExposedHeaders: []string{headerRequestID, headerCorrelationID},
		MaxAge:         int(cfg.MaxAge.Seconds()),
	})
}
