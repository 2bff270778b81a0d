// Package logger provides verbose logging for promptmap.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow the generation pipeline.
// A rotating log file can be added with SetFile; warnings always reach it.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  zapcore.WriteSyncer = zapcore.Lock(zapcore.AddSync(os.Stderr))
	file    *lumberjack.Logger
	base    = zap.NewNop()
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = zapcore.Lock(zapcore.AddSync(w))
	rebuild()
}

// SetFile adds a size-rotated log file at path. An empty path removes the
// file sink. The file receives warnings always and everything else in
// verbose mode.
func SetFile(path string, maxSizeMB int) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		_ = file.Close()
		file = nil
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: 3,
			MaxAge:     28,
		}
	}
	rebuild()
	return nil
}

// With returns a structured logger carrying fields, built from the
// configuration at the time of the call.
func With(fields ...zap.Field) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With(fields...)
}

// Sync flushes buffered entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

// rebuild recreates the base logger. Callers hold mu.
func rebuild() {
	var cores []zapcore.Core
	if verbose {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig()), output, zapcore.DebugLevel))
	}
	if file != nil {
		level := zapcore.WarnLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileConfig()), zapcore.AddSync(file), level))
	}
	if len(cores) == 0 {
		base = zap.NewNop()
		return
	}
	base = zap.New(zapcore.NewTee(cores...))
}

func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

func consoleConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      bracketLevel,
		ConsoleSeparator: " ",
	}
}

func fileConfig() zapcore.EncoderConfig {
	cfg := consoleConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func logf(level zapcore.Level, format string, args ...any) {
	mu.RLock()
	l := base
	mu.RUnlock()
	if ce := l.Check(level, ""); ce != nil {
		ce.Message = fmt.Sprintf(format, args...)
		ce.Write()
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(zapcore.DebugLevel, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	logf(zapcore.InfoLevel, "=== %s ===", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(zapcore.InfoLevel, format, args...)
}

// Warn prints a warning message if verbose mode is enabled, and to the
// log file when one is set.
func Warn(format string, args ...any) {
	logf(zapcore.WarnLevel, format, args...)
}
