package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
		expectedLevel zapcore.Level
	}{
		{
			name:          "OK response",
			handlerStatus: http.StatusOK,
			handlerBody:   "hello",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "client error",
			handlerStatus: http.StatusNotFound,
			handlerBody:   `{"message":"Friend not in list"}`,
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "Internal server error",
			handlerStatus: http.StatusInternalServerError,
			handlerBody:   "error",
			expectedLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)

			var seenID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			rr := httptest.NewRecorder()
			LoggingMiddleware(zap.New(core).Sugar())(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/u1", nil))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			assert.Equal(t, tt.handlerBody, rr.Body.String())

			reqID := rr.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(reqID)
			assert.NoError(t, err)
			assert.Equal(t, reqID, seenID)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, "/users/u1", fields["uri"])
			assert.EqualValues(t, tt.handlerStatus, fields["status"])
			assert.EqualValues(t, len(tt.handlerBody), fields["bytes"])
		})
	}
}

func TestLoggingMiddleware_ReusesClientRequestID(t *testing.T) {
	clientID := uuid.NewString()

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, clientID)
	rr := httptest.NewRecorder()
	LoggingMiddleware(zap.NewNop().Sugar())(next).ServeHTTP(rr, req)

	assert.Equal(t, clientID, seenID)
	assert.Equal(t, clientID, rr.Header().Get(RequestIDHeader))
}

func TestLoggingMiddleware_ReplacesMalformedRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not a uuid\nforged=1")
	rr := httptest.NewRecorder()
	LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)

	got := rr.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "not a uuid\nforged=1", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
