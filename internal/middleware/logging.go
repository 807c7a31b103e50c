package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/pep299/text-summarizer/internal/stats"
)

// Logging creates a request-logging middleware for http.Handler. It logs
// method, path, status code, and elapsed time in milliseconds after the
// response is produced, and records the status in the collector when one
// is provided. The wrapped response passes through untouched.
func Logging(collector *stats.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap the ResponseWriter to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			elapsed := float64(time.Since(start).Microseconds()) / 1000.0
			log.Printf("%s %s %d %.3fms", r.Method, r.URL.Path, wrapped.statusCode, elapsed)

			if collector != nil {
				collector.Record(wrapped.statusCode)
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
