package migration_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/latoulicious/ailie/pkg/database/migration"
	"github.com/latoulicious/ailie/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type foreignKey struct {
	Table string
	From  string
	To    string
}

func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:migration_%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migration.RunMigration(db, logging.NewZapLoggerFrom(zap.NewNop(), "migration")))
	return db
}

func foreignKeysOf(t *testing.T, db *gorm.DB, table string) []foreignKey {
	t.Helper()
	var keys []foreignKey
	require.NoError(t, db.Raw(`SELECT "table", "from", "to" FROM pragma_foreign_key_list(?)`, table).Scan(&keys).Error)
	return keys
}

func TestRunMigration_ForeignKeysPointAtOwners(t *testing.T) {
	db := migratedDB(t)

	assert.Empty(t, foreignKeysOf(t, db, "guilds"))
	assert.Equal(t, []foreignKey{{Table: "guilds", From: "guild_id", To: "guild_id"}}, foreignKeysOf(t, db, "guardians"))
	assert.Equal(t, []foreignKey{{Table: "guardians", From: "guardian_id", To: "guardian_id"}}, foreignKeysOf(t, db, "guardian_heroes"))
	assert.Equal(t, []foreignKey{{Table: "guardians", From: "guardian_id", To: "guardian_id"}}, foreignKeysOf(t, db, "guardian_equipments"))
	assert.Empty(t, foreignKeysOf(t, db, "command_logs"))
}

func TestRunMigration_ConstraintsAreEnforced(t *testing.T) {
	db := migratedDB(t)

	require.NoError(t, db.Exec(`INSERT INTO guardians (guardian_id, gems) VALUES ('1', 0)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO guilds (guild_id, guild_name) VALUES ('777', 'Canterbury')`).Error)

	assert.Error(t, db.Exec(`UPDATE guardians SET guild_id = 'x', guardian_position = 'Member' WHERE guardian_id = '1'`).Error)
	assert.NoError(t, db.Exec(`UPDATE guardians SET guild_id = '777', guardian_position = 'Member' WHERE guardian_id = '1'`).Error)

	assert.Error(t, db.Exec(`INSERT INTO guardian_heroes (guardian_id, hero_name) VALUES ('2', 'Lahn')`).Error)
	assert.NoError(t, db.Exec(`INSERT INTO guardian_heroes (guardian_id, hero_name) VALUES ('1', 'Lahn')`).Error)
	assert.Error(t, db.Exec(`INSERT INTO guardian_equipments (guardian_id, equipment_name) VALUES ('2', 'Ragnarok')`).Error)

	assert.Error(t, db.Exec(`DELETE FROM guilds WHERE guild_id = '777'`).Error, "a guild with members cannot be deleted")
}

func TestReset_DropsEveryTable(t *testing.T) {
	db := migratedDB(t)
	logger := logging.NewZapLoggerFrom(zap.NewNop(), "migration")

	require.NoError(t, db.Exec(`INSERT INTO guardians (guardian_id, gems) VALUES ('1', 0)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO guardian_heroes (guardian_id, hero_name) VALUES ('1', 'Lahn')`).Error)

	require.NoError(t, migration.Reset(db, logger))
	for _, model := range migration.Models() {
		assert.False(t, db.Migrator().HasTable(model))
	}
}
