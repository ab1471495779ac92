package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "ZOOSKEYS_LOG_LEVEL"

// LogFileEnvVar redirects log output to a file. The interactive game owns
// stdout, so anything other than a file there would corrupt the screen.
const LogFileEnvVar = "ZOOSKEYS_LOG_FILE"

// Initialize creates a new logger with the specified level and output path.
// Empty arguments fall back to ZOOSKEYS_LOG_LEVEL and ZOOSKEYS_LOG_FILE.
// If no level is set anywhere, logging is disabled (silent mode).
// If no output is set, logs go to stderr.
func Initialize(level, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if output == "" {
		output = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if output == "stderr" || output == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger purely from environment variables.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info, matching an explicitly enabled but unclear setting.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use this with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFeedback logs a feedback event applied to the keyboard
func LogFeedback(guess string, feedback []string, touched int) {
	Debug("Feedback applied",
		zap.String("guess", guess),
		zap.Strings("feedback", feedback),
		zap.Int("letters_touched", touched),
	)
}

// LogReset logs a keyboard reset
func LogReset(keys int) {
	Debug("Keyboard reset", zap.Int("keys", keys))
}

// LogActivation logs a key activation
func LogActivation(token string) {
	Debug("Key activated", zap.String("token", token))
}

// LogGuess logs a scored guess
func LogGuess(guess string, attempt int, state string) {
	Info("Guess scored",
		zap.String("guess", guess),
		zap.Int("attempt", attempt),
		zap.String("state", state),
	)
}

// LogRoundStart logs the start of a new round
func LogRoundStart(layout string, maxGuesses int) {
	Info("Round started",
		zap.String("layout", layout),
		zap.Int("max_guesses", maxGuesses),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
