package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestIDKey struct{}

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware returns a middleware that writes one log entry per request.
// A valid UUID in the incoming X-Request-ID header is reused, otherwise a new
// one is generated. Server errors are logged at error level, client errors at warn.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(reqID); err != nil {
				reqID = uuid.NewString()
			}

			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			w.Header().Set(RequestIDHeader, reqID)
			next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID)))

			fields := []any{
				"request_id", reqID,
				"method", r.Method,
				"uri", r.RequestURI,
				"status", rw.statusCode,
				"bytes", rw.size,
				"duration", time.Since(start),
			}
			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				log.Errorw("request completed", fields...)
			case rw.statusCode >= http.StatusBadRequest:
				log.Warnw("request completed", fields...)
			default:
				log.Infow("request completed", fields...)
			}
		})
	}
}

// RequestIDFromContext returns the id assigned by LoggingMiddleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// statusRecorder remembers what the handler wrote.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}
