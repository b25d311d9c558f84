// Package logger is a thin leveled wrapper around the standard log package.
package logger

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

// Level is a log severity
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current atomic.Int32

func init() {
	current.Store(int32(LevelInfo))
}

// ParseLevel converts a level name (debug, info, warn, error) to a Level
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// SetLevel sets the minimum level that is written
func SetLevel(level Level) {
	current.Store(int32(level))
}

// SetLevelName sets the level by name, falling back to INFO on unknown names
func SetLevelName(name string) {
	level, err := ParseLevel(name)
	if err != nil {
		log.Printf("[WARN] %v, continuing at INFO", err)
	}
	SetLevel(level)
}

// Enabled reports whether messages at level are written
func Enabled(level Level) bool {
	return Level(current.Load()) <= level
}

// Debugf logs at DEBUG level
func Debugf(format string, v ...interface{}) {
	if Enabled(LevelDebug) {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// Infof logs at INFO level
func Infof(format string, v ...interface{}) {
	if Enabled(LevelInfo) {
		log.Printf("[INFO] "+format, v...)
	}
}

// Warnf logs at WARN level
func Warnf(format string, v ...interface{}) {
	if Enabled(LevelWarn) {
		log.Printf("[WARN] "+format, v...)
	}
}

// Errorf logs at ERROR level
func Errorf(format string, v ...interface{}) {
	if Enabled(LevelError) {
		log.Printf("[ERROR] "+format, v...)
	}
}

// Fatalf logs and exits the process with status 1
func Fatalf(format string, v ...interface{}) {
	log.Fatalf("[FATAL] "+format, v...)
}
