package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/latoulicious/ailie/pkg/database/models"
	"github.com/latoulicious/ailie/pkg/logging"
	"gorm.io/gorm"
)

// LogRepository persists command logs with GORM
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// SaveLog saves a log entry to the database
func (r *LogRepository) SaveLog(entry logging.LogEntry) error {
	log := &models.CommandLog{
		ID:        uuid.New(),
		Component: entry.Component,
		Command:   entry.Command,
		Level:     entry.Level,
		Message:   entry.Message,
		Error:     entry.Error,
		Fields:    entry.Fields,
		UserID:    entry.UserID,
		GuildID:   entry.GuildID,
		ChannelID: entry.ChannelID,
		Timestamp: time.Now(),
	}
	return r.db.Create(log).Error
}

// CountSince counts persisted entries of a level newer than since
func (r *LogRepository) CountSince(level string, since time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CommandLog{}).
		Where("level = ? AND timestamp > ?", level, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RecentErrors returns the latest ERROR entries, newest first
func (r *LogRepository) RecentErrors(limit int) ([]models.CommandLog, error) {
	var logs []models.CommandLog
	if err := r.db.Where("level = ?", logging.LevelError).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
