package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/latoulicious/ailie/internal/config"
	"github.com/latoulicious/ailie/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestMigrationCommands(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DATABASE_URL", "sqlite:"+filepath.Join(t.TempDir(), "migration.db")+"?_foreign_keys=on")

	out := run(t, "check")
	assert.Contains(t, out, "Missing tables")

	run(t, "up")
	out = run(t, "check")
	assert.Contains(t, out, "Dialect: sqlite")
	assert.Contains(t, out, "All expected tables exist")

	assertGuildForeignKey(t)

	run(t, "up", "--reset")
	assert.Contains(t, run(t, "check"), "All expected tables exist")

	run(t, "reset")
	assert.Contains(t, run(t, "check"), "Missing tables")
}

func TestUnknownSubcommand(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"sideways"})
	assert.Error(t, root.Execute())
}

// assertGuildForeignKey opens the migrated store the way the bot does and
// checks that a guardian cannot point at a guild that does not exist
func assertGuildForeignKey(t *testing.T) {
	t.Helper()

	cfg, err := config.LoadDatabaseConfig()
	require.NoError(t, err)
	db, err := database.Open(cfg.Database, false)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, db.Exec(`INSERT INTO guardians (guardian_id, gems) VALUES ('1', 0)`).Error)
	err = db.Exec(`UPDATE guardians SET guild_id = 'x', guardian_position = 'Member' WHERE guardian_id = '1'`).Error
	assert.Error(t, err)

	require.NoError(t, db.Exec(`INSERT INTO guilds (guild_id, guild_name) VALUES ('777', 'Canterbury')`).Error)
	assert.NoError(t, db.Exec(`UPDATE guardians SET guild_id = '777', guardian_position = 'Member' WHERE guardian_id = '1'`).Error)
}
