package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

type options struct {
	outputPath string
	discard    bool
}

type Option func(*options)

// WithOutputPath sends log lines to a file instead of stderr.
func WithOutputPath(path string) Option {
	return func(o *options) { o.outputPath = path }
}

// WithDiscard drops every log line. The terminal client uses it when no log file
// is configured, since writes to stderr would tear the rendered screen.
func WithDiscard() Option {
	return func(o *options) { o.discard = true }
}

// Init initializes the global Zap logger
func Init(environment string, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.discard && o.outputPath == "" {
		globalLogger = zap.NewNop()
		return nil
	}

	var config zap.Config
	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if o.outputPath != "" {
		config.OutputPaths = []string{o.outputPath}
		config.ErrorOutputPaths = []string{o.outputPath}
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	l, err := config.Build()
	if err != nil {
		return err
	}
	globalLogger = l.With(zap.String("service", "femnest"))
	return nil
}

// Get returns the global logger
func Get() *zap.Logger {
	if globalLogger == nil {
		// Fallback to a basic logger if not initialized
		globalLogger, _ = zap.NewProduction()
	}
	return globalLogger
}

// Close flushes the logger
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

// Error logs at error level
func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Warn logs at warn level
func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Fatal logs at fatal level and exits
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}
