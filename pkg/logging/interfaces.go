package logging

// Levels stored with persisted entries. Debug output is never persisted.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger writes leveled messages with structured fields
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
	WithContext(ctx map[string]interface{}) Logger
}

// LoggerFactory creates component and command loggers
type LoggerFactory interface {
	CreateLogger(component string) Logger
	CreateCommandLogger(commandName string) *CommandLogger
}

// LogRepository persists log entries
type LogRepository interface {
	SaveLog(entry LogEntry) error
}

// LogEntry is one persisted log line. Command, GuildID, UserID and ChannelID
// are lifted out of Fields so they can be indexed; GuildID is the Discord
// server, never a game guild.
type LogEntry struct {
	Component string
	Command   string
	Level     string
	Message   string
	Error     string
	Fields    map[string]interface{}
	GuildID   string
	UserID    string
	ChannelID string
}
