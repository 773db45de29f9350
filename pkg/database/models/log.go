package models

import (
	"time"

	"github.com/google/uuid"
)

// CommandLog represents a persisted log entry emitted while handling commands
type CommandLog struct {
	ID        uuid.UUID              `gorm:"type:varchar(36);primaryKey" json:"id"`
	Component string                 `gorm:"size:50;index;not null;default:'commands'" json:"component"` // "commands", "database", "system", etc.
	Command   string                 `gorm:"size:32;index" json:"command"`
	Level     string                 `gorm:"size:10;index;not null" json:"level"` // INFO, WARN or ERROR
	Message   string                 `gorm:"type:text;not null" json:"message"`
	Error     string                 `gorm:"type:text" json:"error"`
	Fields    map[string]interface{} `gorm:"type:text;serializer:json" json:"fields"`
	UserID    string                 `gorm:"size:32;index" json:"user_id"`
	GuildID   string                 `gorm:"size:32;index" json:"guild_id"` // Discord server, not a game guild
	ChannelID string                 `gorm:"size:32;index" json:"channel_id"`
	Timestamp time.Time              `gorm:"index;not null" json:"timestamp"`
}

// TableName returns the table name for CommandLog
func (CommandLog) TableName() string {
	return "command_logs"
}
