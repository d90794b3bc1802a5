package main

import (
	"bytes"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)

	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "user", cfg.PGUser)
	assert.Equal(t, "password", cfg.PGPassword)
	assert.Equal(t, "database", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "", cfg.RedisPassword)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)
	assert.Equal(t, 300*time.Second, cfg.RedisExp)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "screams", cfg.KafkaTopic)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_LOG_FORMAT", "console")
	t.Setenv("APP_CORS_ORIGINS", "http://localhost:3000, https://scream.example.com")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "screamjar")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "redispass")
	t.Setenv("REDIS_POOL_SIZE", "15")
	t.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	t.Setenv("REDIS_EXP_SECOND", "120")

	t.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	t.Setenv("KAFKA_TOPIC", "scream-events")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, []string{"http://localhost:3000", "https://scream.example.com"}, cfg.CORSOrigins)

	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "admin", cfg.PGUser)
	assert.Equal(t, "secret", cfg.PGPassword)
	assert.Equal(t, "screamjar", cfg.PGDB)
	assert.Equal(t, 20, cfg.PGMaxOpenConns)
	assert.Equal(t, 10, cfg.PGMaxIdleConns)

	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "redispass", cfg.RedisPassword)
	assert.Equal(t, 15, cfg.RedisPoolSize)
	assert.Equal(t, 5, cfg.RedisMinIdleConns)
	assert.Equal(t, 120*time.Second, cfg.RedisExp)

	assert.Equal(t, []string{"kafka1:9092", "kafka2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "scream-events", cfg.KafkaTopic)
}

func TestParseConfig_FromFile(t *testing.T) {
	os.Clearenv()

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nKAFKA_TOPIC=from-file\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, "from-file", cfg.KafkaTopic)
}

func TestParseConfig_InvalidInt(t *testing.T) {
	os.Clearenv()
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	assert.ErrorContains(t, err, "POSTGRES_PORT")
}

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config{AppHost: "localhost", AppPort: "8080", CORSOrigins: []string{"*"}}
	return newRouter(cfg, sqlx.NewDb(db, "sqlmock"), nil, nil), mock
}

func TestNewRouter_AddFriendRunsInTransaction(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT friendlist FROM users WHERE id = \$1 FOR UPDATE`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"friendlist"}).AddRow("u3"))
	mock.ExpectExec(`UPDATE users SET friendlist = \$1 WHERE id = \$2`).
		WithArgs("u3,u2", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := bytes.NewBufferString(`{"myUserID":"u1","friendUserID":"u2"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/add-friend", body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Friend added successfully"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRouter_UsernameWithoutCache(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT username FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("Alice"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/u1/username", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"Alice"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRouter_FriendSearchWithoutID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/friend-search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/delete-friend", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/balance", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewKafkaWriter_DoesNotBlockRequests(t *testing.T) {
	cfg := config{KafkaBrokers: []string{"kafka1:9092", "kafka2:9092"}, KafkaTopic: "screams"}

	w := newKafkaWriter(cfg)
	defer w.Close()

	assert.True(t, w.Async)
	assert.LessOrEqual(t, w.BatchTimeout, 50*time.Millisecond)
	assert.Positive(t, w.BatchTimeout)
	assert.NotNil(t, w.Completion)
	assert.Equal(t, "screams", w.Topic)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.NotNil(t, w.Addr)
}

func TestLogKafkaCompletion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = prev }()

	msgs := []kafka.Message{{Key: []byte("u1")}, {Key: []byte("u2")}}

	logKafkaCompletion(msgs, nil)
	assert.Equal(t, 0, logs.Len())

	logKafkaCompletion(msgs, errors.New("broker unreachable"))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "Failed to deliver scream events", entry.Message)
	assert.EqualValues(t, 2, entry.ContextMap()["count"])
}
