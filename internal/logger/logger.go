// Package logger wraps zap to provide structured logging for the service.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger holds the underlying zap logger.
type Logger struct {
	// Log is the configured zap logger instance.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap instance. Call Init before use.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init configures the logger at the given level. In the "dev" environment
// it uses a human-readable console encoder; otherwise JSON to stdout.
func (l *Logger) Init(level, env string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	if env == "dev" {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err := cfg.Build()
		if err != nil {
			return err
		}
		l.Log = logger
		return nil
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(os.Stdout), lvl)
	l.Log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return nil
}
