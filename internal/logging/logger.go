package logging

import (
	"log"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps logr.Logger with a few helpers.
type Logger struct {
	log logr.Logger
}

// New wraps base, falling back to DefaultLogger when base has no sink.
func New(base logr.Logger) Logger {
	if base.GetSink() == nil {
		base = DefaultLogger()
	}
	return Logger{log: base}
}

// NewZap builds a zap logger that writes to stderr only. Stdout belongs to
// the MCP stdio transport and must never receive log lines.
func NewZap(level string) (*zap.Logger, error) {
	return zapConfig(level).Build()
}

func zapConfig(level string) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg
}

func DefaultLogger() logr.Logger {
	return ForLevel("info")
}

// ForLevel returns a logr.Logger at the given level name. Unknown names mean
// info.
func ForLevel(level string) logr.Logger {
	zapLogger, err := NewZap(level)
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return zapr.NewLogger(zapLogger)
}

func Discard() Logger {
	return Logger{log: logr.Discard()}
}

// StdLog adapts a zap logger for APIs that want a *log.Logger.
func StdLog(z *zap.Logger) *log.Logger {
	return zap.NewStdLog(z)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{log: l.log.WithValues(keysAndValues...)}
}

func (l Logger) WithName(name string) Logger {
	return Logger{log: l.log.WithName(name)}
}

func (l Logger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

// Debug logs at V(1), a no-op unless the level is debug.
func (l Logger) Debug(msg string, keysAndValues ...any) {
	if l.log.V(1).Enabled() {
		l.log.V(1).Info(msg, keysAndValues...)
	}
}

func (l Logger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(err, msg, keysAndValues...)
}

func (l Logger) Logr() logr.Logger {
	return l.log
}
