package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every entry written after Initialize.
const ServiceName = "scream-jar-server"

// Output encodings accepted by WithFormat.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

type options struct {
	format      string
	outputPaths []string
}

// Option adjusts how Initialize builds the logger.
type Option func(*options)

// WithFormat selects the entry encoding, FormatJSON or FormatConsole.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithOutputPaths overrides the sinks, stderr by default.
func WithOutputPaths(paths ...string) Option {
	return func(o *options) { o.outputPaths = paths }
}

// Initialize replaces Log with a logger at the given level. On error the
// previous logger stays in place.
func Initialize(level string, opts ...Option) error {
	o := options{format: FormatJSON, outputPaths: []string{"stderr"}}
	for _, opt := range opts {
		opt(&o)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	switch o.format {
	case FormatJSON:
		cfg = zap.NewProductionConfig()
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return fmt.Errorf("unknown log format %q", o.format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = o.outputPaths
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": ServiceName}

	l, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Log.Sync()
}
