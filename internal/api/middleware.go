package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/example/roomline/internal/utils"
	"go.uber.org/zap"
)

// RequireAPIKey rejects requests lacking the expected x-api-key header. An
// empty configured key disables the check for local development.
func RequireAPIKey(apiKey string, logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get("x-api-key")
		if provided == "" {
			logger.Error("missing required header: x-api-key")
			writeUnauthorized(w, "Missing required header: x-api-key")
			return
		}
		if provided != apiKey {
			logger.Warn("invalid API key attempt",
				zap.String("key", utils.SanitizeLogString(provided)))
			writeUnauthorized(w, "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming endpoints working behind the recorder.
func (rec *statusRecorder) Flush() {
	if f, ok := rec.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// LogRequests records method, path, status and duration for every request.
func LogRequests(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", utils.SanitizeLogString(r.URL.Path)),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
