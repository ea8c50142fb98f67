// internal/middleware/accesslog.go
//
// Structured access log.
//
// Context
// -------
// One INFO line per request, written through the shared zap logger so
// access events land in the same daily JSON file as lifecycle events.
// UA and client-IP fields come from the requestinfo enrichment that
// runs earlier in the chain; when it has not run the line simply omits
// those fields.
package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/requestinfo"
)

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per completed request.
func AccessLog(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("host", r.Host),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			}
			if info := requestinfo.FromContext(r.Context()); info != nil {
				fields = append(fields,
					zap.String("ip", info.IP.String()),
					zap.String("browser", info.UA.Browser),
					zap.String("device", info.UA.Device),
					zap.Bool("bot", info.UA.IsBot),
				)
			}
			log.Info("request", fields...)
		})
	}
}
