package logging

// DatabaseLogger wraps a base logger with database persistence
type DatabaseLogger struct {
	base       Logger
	component  string
	context    map[string]interface{}
	repository LogRepository
}

// NewDatabaseLogger creates a new database-backed logger
func NewDatabaseLogger(base Logger, component string, repository LogRepository) *DatabaseLogger {
	return &DatabaseLogger{
		base:       base,
		component:  component,
		context:    make(map[string]interface{}),
		repository: repository,
	}
}

// Info logs informational messages and persists them
func (d *DatabaseLogger) Info(msg string, fields map[string]interface{}) {
	d.base.Info(msg, fields)
	d.persistLog(LevelInfo, msg, nil, fields)
}

// Error logs error messages and persists them
func (d *DatabaseLogger) Error(msg string, err error, fields map[string]interface{}) {
	d.base.Error(msg, err, fields)
	d.persistLog(LevelError, msg, err, fields)
}

// Warn logs warning messages and persists them
func (d *DatabaseLogger) Warn(msg string, fields map[string]interface{}) {
	d.base.Warn(msg, fields)
	d.persistLog(LevelWarn, msg, nil, fields)
}

// Debug logs debug messages without persisting them
func (d *DatabaseLogger) Debug(msg string, fields map[string]interface{}) {
	d.base.Debug(msg, fields)
}

// WithContext creates a new logger with additional context fields
func (d *DatabaseLogger) WithContext(ctx map[string]interface{}) Logger {
	return &DatabaseLogger{
		base:       d.base.WithContext(ctx),
		component:  d.component,
		context:    mergeFields(d.context, ctx),
		repository: d.repository,
	}
}

// persistLog saves the entry; a failed save is reported on the base logger only
func (d *DatabaseLogger) persistLog(level, message string, err error, fields map[string]interface{}) {
	if d.repository == nil {
		return
	}

	entry := buildLogEntry(d.component, level, message, err, mergeFields(d.context, fields))
	if saveErr := d.repository.SaveLog(entry); saveErr != nil {
		d.base.Error("Failed to persist log to database", saveErr, map[string]interface{}{
			"original_message": message,
			"original_level":   level,
		})
	}
}

// buildLogEntry creates a LogEntry, lifting well-known ids out of the fields
func buildLogEntry(component, level, message string, err error, fields map[string]interface{}) LogEntry {
	entry := LogEntry{
		Component: component,
		Level:     level,
		Message:   message,
		Fields:    fields,
	}

	if err != nil {
		entry.Error = err.Error()
	}
	if command, ok := fields["command"].(string); ok {
		entry.Command = command
	}
	if guildID, ok := fields["guild_id"].(string); ok {
		entry.GuildID = guildID
	}
	if userID, ok := fields["user_id"].(string); ok {
		entry.UserID = userID
	}
	if channelID, ok := fields["channel_id"].(string); ok {
		entry.ChannelID = channelID
	}

	return entry
}
