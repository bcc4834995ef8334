package middleware

import (
	"net/http"
	"time"

	"github.com/akinalp/parkapp/pkg/logger"
)

// RequestLogger, her request'i method, route, status ve süre ile loglar.
// 5xx error, 4xx warn, diğerleri info seviyesindedir.
func RequestLogger(next http.Handler) http.Handler {
	log := logger.For("http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rw, r)

		// Yüksek kardinaliteyi önlemek için ham path yerine route pattern.
		route := r.Pattern
		if route == "" {
			route = r.URL.Path
		}

		event := log.Info()
		switch {
		case rw.statusCode >= 500:
			event = log.Error()
		case rw.statusCode >= 400:
			event = log.Warn()
		}

		event.
			Str("method", r.Method).
			Str("route", route).
			Int("status", rw.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}

// responseWriter, status code'u yakalamak için http.ResponseWriter sarmalayıcı.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
