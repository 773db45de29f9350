package logging

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultLoggerFactory implements LoggerFactory using zap loggers
type DefaultLoggerFactory struct {
	level   string
	format  string
	loggers map[string]Logger
	mu      sync.Mutex

	// wrap decorates freshly built component loggers
	wrap func(component string, base Logger) Logger
}

// NewLoggerFactory creates a new logger factory
func NewLoggerFactory(level, format string) *DefaultLoggerFactory {
	return &DefaultLoggerFactory{
		level:   level,
		format:  format,
		loggers: make(map[string]Logger),
	}
}

// NewDatabaseLoggerFactory creates a logger factory whose loggers also persist
// INFO, WARN and ERROR entries through repository
func NewDatabaseLoggerFactory(level, format string, repository LogRepository) *DefaultLoggerFactory {
	factory := NewLoggerFactory(level, format)
	factory.wrap = func(component string, base Logger) Logger {
		return NewDatabaseLogger(base, component, repository)
	}
	return factory
}

// CreateLogger returns the cached logger for a component, building it on first use
func (f *DefaultLoggerFactory) CreateLogger(component string) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if logger, exists := f.loggers[component]; exists {
		return logger
	}

	var logger Logger
	zapLogger, err := NewZapLogger(component, f.level, f.format)
	if err != nil {
		// Config validation rejects bad levels; keep the bot alive regardless.
		logger = NewZapLoggerFrom(zap.NewNop(), component)
	} else {
		logger = zapLogger
	}

	if f.wrap != nil {
		logger = f.wrap(component, logger)
	}

	f.loggers[component] = logger
	return logger
}

// CreateCommandLogger creates a logger for Discord command operations
func (f *DefaultLoggerFactory) CreateCommandLogger(commandName string) *CommandLogger {
	return NewCommandLogger(f.CreateLogger("commands"), commandName)
}

var (
	globalFactory LoggerFactory
	globalMu      sync.RWMutex
)

// GetGlobalLoggerFactory returns the process-wide logger factory
func GetGlobalLoggerFactory() LoggerFactory {
	globalMu.RLock()
	factory := globalFactory
	globalMu.RUnlock()
	if factory != nil {
		return factory
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalFactory == nil {
		globalFactory = NewLoggerFactory("info", "json")
	}
	return globalFactory
}

// SetGlobalLoggerFactory sets the global logger factory
func SetGlobalLoggerFactory(factory LoggerFactory) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalFactory = factory
}
