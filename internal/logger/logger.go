package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "logistics-backoffice"

// Logger stays a no-op until Init runs, so packages can log from tests without setup.
var Logger = zap.NewNop()

// Init builds the process logger. level overrides the environment default
// (debug in development, info in production) when it is not empty.
func Init(environment, level string) error {
	cfg := zap.NewDevelopmentConfig()
	defaultLevel := zapcore.DebugLevel
	if environment == "production" {
		cfg = zap.NewProductionConfig()
		defaultLevel = zapcore.InfoLevel
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl := defaultLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	enc := &cfg.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.MessageKey = "message"
	enc.LevelKey = "level"
	enc.CallerKey = "caller"
	enc.StacktraceKey = "stacktrace"
	cfg.InitialFields = map[string]interface{}{
		"service":     serviceName,
		"environment": environment,
	}

	l, err := cfg.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return err
	}

	Logger = l
	zap.ReplaceGlobals(l)
	return nil
}

func Sync() {
	_ = Logger.Sync()
}

// WithRequestID returns a child logger tagged with the request id. It is called
// directly, so the facade's caller skip is undone.
func WithRequestID(requestID string) *zap.Logger {
	return Logger.WithOptions(zap.AddCallerSkip(-1)).With(zap.String("request_id", requestID))
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { Logger.Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { Logger.Warn(msg, fields...) }

func Error(msg string, fields ...zap.Field) { Logger.Error(msg, fields...) }
