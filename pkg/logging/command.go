package logging

import (
	"fmt"
)

// ScopedLogger wraps a base logger and tags every entry with a scope
type ScopedLogger struct {
	base    Logger
	scope   string
	context map[string]interface{}
}

// NewScopedLogger creates a new scope-specific logger
func NewScopedLogger(base Logger, scope string) *ScopedLogger {
	return &ScopedLogger{
		base:    base,
		scope:   scope,
		context: make(map[string]interface{}),
	}
}

// Info logs informational messages with scope context
func (s *ScopedLogger) Info(msg string, fields map[string]interface{}) {
	s.base.Info(s.format(msg), s.enrichFields(fields))
}

// Error logs error messages with scope context
func (s *ScopedLogger) Error(msg string, err error, fields map[string]interface{}) {
	s.base.Error(s.format(msg), err, s.enrichFields(fields))
}

// Warn logs warning messages with scope context
func (s *ScopedLogger) Warn(msg string, fields map[string]interface{}) {
	s.base.Warn(s.format(msg), s.enrichFields(fields))
}

// Debug logs debug messages with scope context
func (s *ScopedLogger) Debug(msg string, fields map[string]interface{}) {
	s.base.Debug(s.format(msg), s.enrichFields(fields))
}

// WithContext creates a new logger with additional context fields
func (s *ScopedLogger) WithContext(ctx map[string]interface{}) Logger {
	return s.with(ctx)
}

func (s *ScopedLogger) with(ctx map[string]interface{}) *ScopedLogger {
	return &ScopedLogger{
		base:    s.base,
		scope:   s.scope,
		context: mergeFields(s.context, ctx),
	}
}

func (s *ScopedLogger) format(msg string) string {
	return fmt.Sprintf("[%s] %s", s.scope, msg)
}

// enrichFields combines scope context with provided fields
func (s *ScopedLogger) enrichFields(fields map[string]interface{}) map[string]interface{} {
	enriched := mergeFields(s.context, fields)
	enriched["scope"] = s.scope
	return enriched
}

// CommandLogger is a logger for Discord command handling
type CommandLogger struct {
	*ScopedLogger
	commandName string
}

// NewCommandLogger creates a new command logger
func NewCommandLogger(base Logger, commandName string) *CommandLogger {
	scoped := NewScopedLogger(base, "commands").with(map[string]interface{}{
		"command": commandName,
	})

	return &CommandLogger{
		ScopedLogger: scoped,
		commandName:  commandName,
	}
}

// CommandName returns the command this logger was created for
func (c *CommandLogger) CommandName() string {
	return c.commandName
}

// WithInteraction adds Discord message context to the command logger
func (c *CommandLogger) WithInteraction(guildID, userID, channelID string) Logger {
	return c.WithContext(map[string]interface{}{
		"guild_id":   guildID,
		"user_id":    userID,
		"channel_id": channelID,
	})
}
