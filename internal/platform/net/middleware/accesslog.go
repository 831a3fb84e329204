package middleware

import (
	"net/http"
	"time"

	"mastoshim/internal/platform/logger"
	"mastoshim/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// slowRequest marks an access line as warn
const slowRequest = 500 * time.Millisecond

// probePaths are logged at debug so kubelet polling does not drown the log
var probePaths = map[string]bool{"/livez": true, "/readyz": true, "/metrics": true}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// AccessLog logs one line per request and records its duration by route pattern
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		route := routePattern(r)
		metrics.ObserveHTTP(r.Method, route, sw.status, elapsed)

		log := logger.C(r.Context())
		evt := log.Info()
		switch {
		case probePaths[r.URL.Path]:
			evt = log.Debug()
		case elapsed >= slowRequest || sw.status >= http.StatusInternalServerError:
			evt = log.Warn()
		}
		evt.Int("status", sw.status).
			Dur("elapsed", elapsed).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", route).
			Int("bytes", sw.bytes).
			Msg("request done")
	})
}

// routePattern is the matched chi pattern such as /api/v1/statuses/{id}; unmatched requests share one label
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
