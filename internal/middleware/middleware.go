package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// CORS permits cross-origin requests from the storefront and answers
// preflight requests directly.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminKeyAuth requires a valid X-Admin-Key header on requests matched by the
// protected predicate. Requests outside the predicate pass through
// unauthenticated, so public storefront routes share the chain with the admin
// surface.
func AdminKeyAuth(adminKey string, protected func(r *http.Request) bool, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !protected(r) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-Admin-Key")
			switch {
			case provided == "":
				logger.Warn().Str("path", r.URL.Path).Msg("missing admin key")
				http.Error(w, "unauthorised: missing admin key", http.StatusUnauthorized)
			case subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1:
				logger.Warn().Str("path", r.URL.Path).Msg("invalid admin key")
				http.Error(w, "unauthorised: invalid admin key", http.StatusUnauthorized)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// Logging emits one structured log line per request.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rw, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery converts panics into 500 responses so one bad handler cannot take
// the server down.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					logger.Error().
						Interface("panic", v).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error": "internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter records the status code written by the handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
