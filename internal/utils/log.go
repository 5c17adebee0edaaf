package utils

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel of the inference engine
type LogLevel uint8

const (
	// LogLevelNothing disables
	LogLevelNothing LogLevel = iota
	// LogLevelError enables err logs
	LogLevelError
	// LogLevelInfo enables info logs (e.g. model construction)
	LogLevelInfo
	// LogLevelDebug enables debug logs (e.g. rule activations)
	LogLevelDebug
)

const logEnv = "FUZZY_LOG_LEVEL"

var (
	level  = zap.NewAtomicLevelAt(zapcore.FatalLevel + 1)
	logger = newLogger(zap.NewDevelopmentConfig())
)

func newLogger(config zap.Config) *zap.SugaredLogger {
	config.Level = level
	config.DisableStacktrace = true
	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetLogLevel sets the log level
func SetLogLevel(logLevel LogLevel) {
	switch logLevel {
	case LogLevelDebug:
		level.SetLevel(zapcore.DebugLevel)
	case LogLevelInfo:
		level.SetLevel(zapcore.InfoLevel)
	case LogLevelError:
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.FatalLevel + 1)
	}
}

// SetLogger replaces the underlying zap logger. It must be called before
// any engine is used. The level set through SetLogLevel still applies.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.WithOptions(zap.AddCallerSkip(1), zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return &leveledCore{Core: c}
	})).Sugar()
}

// Debugf logs something
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof logs something
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Errorf logs something
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Debug returns true if the log level is LogLevelDebug
func Debug() bool {
	return level.Enabled(zapcore.DebugLevel)
}

// Sync flushes buffered log entries.
func Sync() error {
	return logger.Sync()
}

func init() {
	readLoggingEnv()
}

func readLoggingEnv() {
	switch strings.ToLower(os.Getenv(logEnv)) {
	case "":
		return
	case "debug":
		SetLogLevel(LogLevelDebug)
	case "info":
		SetLogLevel(LogLevelInfo)
	case "error":
		SetLogLevel(LogLevelError)
	default:
		fmt.Fprintf(os.Stderr, "invalid %s value, expected one of debug, info, error\n", logEnv)
	}
}

// leveledCore gates a foreign core with the package log level.
type leveledCore struct {
	zapcore.Core
}

func (c *leveledCore) Enabled(l zapcore.Level) bool {
	return level.Enabled(l) && c.Core.Enabled(l)
}

func (c *leveledCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !level.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

func (c *leveledCore) With(fields []zapcore.Field) zapcore.Core {
	return &leveledCore{Core: c.Core.With(fields)}
}
