package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ExpectedTables lists every table the migrations create
var ExpectedTables = []string{
	"guilds",
	"guardians",
	"guardian_heroes",
	"guardian_equipments",
	"command_logs",
}

// CheckReport summarises a connectivity check
type CheckReport struct {
	Dialect         string
	Version         string
	ExistingTables  []string
	MissingTables   []string
	OpenConnections int
	InUse           int
	Idle            int
	QueryLatency    time.Duration
}

// Check pings the store, reads the server version, looks for the expected
// tables and verifies that a transaction can be opened and rolled back.
func Check(ctx context.Context, db *gorm.DB) (*CheckReport, error) {
	db = db.WithContext(ctx)
	report := &CheckReport{Dialect: db.Dialector.Name()}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	versionQuery := "SELECT version()"
	if report.Dialect == "sqlite" {
		versionQuery = "SELECT sqlite_version()"
	}
	if err := db.Raw(versionQuery).Scan(&report.Version).Error; err != nil {
		return nil, fmt.Errorf("failed to get database version: %w", err)
	}

	migrator := db.Migrator()
	for _, table := range ExpectedTables {
		if migrator.HasTable(table) {
			report.ExistingTables = append(report.ExistingTables, table)
		} else {
			report.MissingTables = append(report.MissingTables, table)
		}
	}

	if err := checkTransaction(db); err != nil {
		return nil, err
	}

	start := time.Now()
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		return nil, fmt.Errorf("simple query failed: %w", err)
	}
	report.QueryLatency = time.Since(start)

	stats := sqlDB.Stats()
	report.OpenConnections = stats.OpenConnections
	report.InUse = stats.InUse
	report.Idle = stats.Idle

	return report, nil
}

// checkTransaction opens a transaction, runs a query and rolls it back
func checkTransaction(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	var one int
	if err := tx.Raw("SELECT 1").Scan(&one).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to query inside transaction: %w", err)
	}
	if one != 1 {
		tx.Rollback()
		return fmt.Errorf("unexpected result in transaction: expected 1, got %d", one)
	}

	if err := tx.Rollback().Error; err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
