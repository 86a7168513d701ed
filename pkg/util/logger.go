package util

import (
	"fmt"
	"sync"
	"time"
)

const (
	// LevelError error only
	LevelError = iota
	// LevelWarning warning and above
	LevelWarning
	// LevelInformational informational and above
	LevelInformational
	// LevelDebug everything
	LevelDebug
)

var (
	logger *Logger
	mu     sync.Mutex
)

// Logger leveled logger shared across the application
type Logger struct {
	level int
}

// Println prints a line with the shared timestamp format
func (ll *Logger) Println(prefix string, msg string) {
	fmt.Printf("%s %s %s\n", prefix, time.Now().Format("2006-01-02 15:04:05"), msg)
}

// Panic logs the message and panics
func (ll *Logger) Panic(format string, v ...interface{}) {
	if LevelError > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println("[Panic]", msg)
	panic(msg)
}

// Error logs an error message
func (ll *Logger) Error(format string, v ...interface{}) {
	if LevelError > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println("[E]", msg)
}

// Warning logs a warning message
func (ll *Logger) Warning(format string, v ...interface{}) {
	if LevelWarning > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println("[W]", msg)
}

// Info logs an informational message
func (ll *Logger) Info(format string, v ...interface{}) {
	if LevelInformational > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println("[I]", msg)
}

// Debug logs a debug message
func (ll *Logger) Debug(format string, v ...interface{}) {
	if LevelDebug > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println("[D]", msg)
}

// BuildLogger builds the shared logger with the given level name
func BuildLogger(level string) {
	intLevel := LevelError
	switch level {
	case "error":
		intLevel = LevelError
	case "warning":
		intLevel = LevelWarning
	case "info":
		intLevel = LevelInformational
	case "debug":
		intLevel = LevelDebug
	}
	mu.Lock()
	defer mu.Unlock()
	logger = &Logger{
		level: intLevel,
	}
}

// Log returns the shared logger
func Log() *Logger {
	if logger == nil {
		mu.Lock()
		defer mu.Unlock()
		logger = &Logger{
			level: LevelDebug,
		}
	}
	return logger
}
