package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/latoulicious/ailie/internal/config"
	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported dialects, named after the dburl driver they resolve to
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite3"
)

// Open connects to the store described by cfg. DATABASE_URL wins when set;
// otherwise a postgres URL is assembled from the DB_* parts.
func Open(cfg config.DatabaseConfig, production bool) (*gorm.DB, error) {
	rawURL := cfg.URL
	if rawURL == "" {
		built, err := BuildURL(cfg, production)
		if err != nil {
			return nil, err
		}
		rawURL = built
	}

	dialector, err := Dialector(rawURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying database: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// BuildURL assembles a postgres URL from host, port, name and credentials.
// Production always requires TLS.
func BuildURL(cfg config.DatabaseConfig, production bool) (string, error) {
	if cfg.Host == "" || cfg.Name == "" {
		return "", errors.New("database URL is not set and DB_HOST/DB_NAME are incomplete")
	}

	sslMode := cfg.SSLMode
	if production {
		sslMode = "require"
	}
	if sslMode == "" {
		sslMode = "disable"
	}

	u := &url.URL{
		Scheme:   "postgres",
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	return u.String(), nil
}

// Dialector picks the GORM dialector matching the URL scheme
func Dialector(rawURL string) (gorm.Dialector, error) {
	u, err := dburl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	switch u.Driver {
	case DialectPostgres:
		return postgres.Open(u.DSN), nil
	case DialectMySQL:
		return mysql.Open(mysqlDSN(u.DSN)), nil
	case DialectSQLite:
		return sqlite.Open(sqliteDSN(u.DSN)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", u.Driver)
	}
}

// mysqlDSN scans DATETIME columns into time.Time and reports matched rows
// instead of changed rows, so an update with identical values still counts.
func mysqlDSN(dsn string) string {
	for _, param := range []string{"parseTime=true", "clientFoundRows=true"} {
		key := param[:strings.Index(param, "=")+1]
		if !strings.Contains(dsn, key) {
			dsn = appendParam(dsn, param)
		}
	}
	return dsn
}

// sqliteDSN turns on foreign key enforcement for every pooled connection
// unless the URL already decides it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	return appendParam(dsn, "_foreign_keys=on")
}

func appendParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
