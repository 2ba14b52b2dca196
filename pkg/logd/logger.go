package logd

import (
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

const (
	LogLevelEnv = "LOG_LEVEL"

	stacktraceKey = "stacktrace"
)

type LogLevel int

const (
	WarnLevel LogLevel = iota - 1
	InfoLevel
	DebugLevel
	TraceLevel
)

func (level LogLevel) String() string {
	switch level {
	case WarnLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	}

	return "unknown"
}

// Logger is a thin wrapper around logr.Logger adding leveled convenience methods,
// it is meant to be passed around by value.
type Logger struct {
	logr.Logger
}

func (l Logger) Debug(message string, keysAndValues ...any) {
	l.V(int(DebugLevel)).Info(message, keysAndValues...)
}

func (l Logger) Trace(message string, keysAndValues ...any) {
	l.V(int(TraceLevel)).Info(message, keysAndValues...)
}

func (l Logger) WithName(name string) Logger {
	return Logger{l.Logger.WithName(name)}
}

var (
	baseLogger     Logger
	baseLoggerOnce sync.Once
)

// Get returns the shared base logger, derived loggers are created with WithName.
// Creating a full zap logger is expensive, deriving via WithName is cheap, so
// there is exactly one base logger per process.
func Get() Logger {
	baseLoggerOnce.Do(func() {
		logLevel, err := readLogLevelFromEnv()
		if err != nil {
			logLevel = InfoLevel
		}

		baseLogger = Logger{newZapLogger(NewPrettyLogWriter(), logLevel)}
	})

	return baseLogger
}

// LogBaseLoggerSettings logs the state the base logger ended up with, mainly so
// a misspelled LOG_LEVEL value is visible in the output.
func LogBaseLoggerSettings() {
	logLevel, err := readLogLevelFromEnv()
	if err != nil {
		Get().Error(err, "base logger falls back to info level")

		return
	}

	Get().Info("base logger configured", "level", logLevel.String())
}

func readLogLevelFromEnv() (LogLevel, error) {
	raw, isSet := os.LookupEnv(LogLevelEnv)
	if !isSet || raw == "" {
		return InfoLevel, nil
	}

	switch raw {
	case "warn":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	}

	return InfoLevel, errors.Errorf("unknown log level %q set via %s", raw, LogLevelEnv)
}
