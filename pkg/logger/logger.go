// Package logger provides structured logging backed by zap
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	Format      string
	Development bool
	OutputPaths []string
}

// Logger bundles the zap logger with the level handle used for runtime changes
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// New creates a new logger instance
func New(cfg Config) (*Logger, error) {
	level := zap.NewAtomicLevelAt(ParseLevel(cfg.Level))

	var encoderConfig zapcore.EncoderConfig
	if cfg.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}

	sink, _, err := zap.Open(outputPaths...)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, sink, level)

	options := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		options = append(options, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return &Logger{Logger: zap.New(core, options...), level: level}, nil
}

// SetLevel changes the minimum enabled level without rebuilding the logger
func (l *Logger) SetLevel(name string) {
	l.level.SetLevel(ParseLevel(name))
}

// Level reports the current minimum level
func (l *Logger) Level() zapcore.Level {
	return l.level.Level()
}

// ParseLevel parses a level name, falling back to info
func ParseLevel(name string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}
