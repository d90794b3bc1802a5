package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/scream-jar-server/internal/handlers"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/middlewares"
	"github.com/sbilibin2017/scream-jar-server/internal/repositories"
	"github.com/sbilibin2017/scream-jar-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/scream-jar-server/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	KafkaBrokers []string
	KafkaTopic   string
}

// @title scream-jar-server API
// @version 1.0.0
// @description Users, screams and friend lists for the scream wall
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka and logging configuration.
// A missing file is not an error.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", logger.FormatJSON)
	cfg.CORSOrigins = splitList(getEnv("APP_CORS_ORIGINS", "*"))

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	var redisExpSecond int
	if redisExpSecond, err = getInt("REDIS_EXP_SECOND", "300"); err != nil {
		return
	}
	cfg.RedisExp = time.Duration(redisExpSecond) * time.Second

	// Kafka config, no brokers means no events
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "screams")

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, logger.WithFormat(cfg.LogFormat)); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.NewSchemaRepository(db).Initialize(ctx); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	// Connect to Redis. The cache is optional, an unreachable Redis only costs lookups.
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis is not reachable, usernames will be read from PostgreSQL", "error", err)
	}
	defer rdb.Close()

	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, db, rdb, kafkaWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// kafkaBatchTimeout bounds how long a scream event waits for a batch to fill.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter builds an async writer for scream events. WriteMessages only
// enqueues, so a request never waits on the broker; delivery failures are
// reported through Completion.
func newKafkaWriter(cfg config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           kafkaBatchTimeout,
		WriteTimeout:           5 * time.Second,
		Completion:             logKafkaCompletion,
	}
}

func logKafkaCompletion(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	keys := make([]string, 0, len(messages))
	for _, m := range messages {
		keys = append(keys, string(m.Key))
	}
	logger.Log.Errorw("Failed to deliver scream events", "keys", keys, "count", len(messages), "error", err)
}

// newRouter wires repositories, services and handlers. rdb and kafkaWriter may be nil.
func newRouter(cfg config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) http.Handler {
	// Initialize repositories
	schemaRepo := repositories.NewSchemaRepository(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	friendListRepo := repositories.NewFriendListRepository(db, middlewares.GetTxFromContext)
	screamWriteRepo := repositories.NewScreamWriteRepository(db)
	screamReadRepo := repositories.NewScreamReadRepository(db)

	var usernameCache services.UsernameCache
	if rdb != nil {
		usernameCache = repositories.NewUsernameCacheRepository(rdb, cfg.RedisExp)
	}

	// Initialize services
	userService := services.NewUserService(userReadRepo, usernameCache)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, usernameCache)
	friendService := services.NewFriendService(friendListRepo)
	screamService := services.NewScreamService(screamWriteRepo, screamReadRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))

	handlers.RegisterInitializeHandler(r, handlers.NewInitializeHandler(schemaRepo))
	handlers.RegisterLoginHandler(r, handlers.NewLoginHandler(authService))
	handlers.RegisterRegisterHandler(r, handlers.NewRegisterHandler(authService))
	handlers.RegisterSaveProfileHandler(r, handlers.NewSaveProfileHandler(authService))
	handlers.RegisterUserHandlers(r,
		handlers.NewLoadUserHandler(userService),
		handlers.NewUserExistsHandler(userService),
		handlers.NewGetUsernameHandler(userService),
	)
	handlers.RegisterFriendSearchHandler(r, handlers.NewFriendSearchHandler(userService))
	handlers.RegisterScreamHandlers(r,
		handlers.NewSaveScreamHandler(screamService),
		handlers.NewLoadScreamsHandler(screamService),
	)

	// Friend list edits read-modify-write one row and must not interleave
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		handlers.RegisterFriendHandlers(r,
			handlers.NewAddFriendHandler(friendService),
			handlers.NewDeleteFriendHandler(friendService),
		)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
