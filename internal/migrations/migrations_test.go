package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Paired(t *testing.T) {
	ups, err := fs.Glob(MigrationFiles, "*.up.sql")
	require.NoError(t, err)
	require.Len(t, ups, 3)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(MigrationFiles, down)
		require.NoError(t, err, "missing down migration for %s", up)
	}
}

func TestMigrationFiles_CreateQueriedTables(t *testing.T) {
	var all strings.Builder
	ups, err := fs.Glob(MigrationFiles, "*.up.sql")
	require.NoError(t, err)
	for _, up := range ups {
		content, err := fs.ReadFile(MigrationFiles, up)
		require.NoError(t, err)
		all.Write(content)
	}

	for _, table := range []string{"energy_readings", "sensors", "district_profiles"} {
		require.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table)
	}
}

func TestMigrationFiles_UsageHasNoFixedScale(t *testing.T) {
	content, err := fs.ReadFile(MigrationFiles, "000003_widen_energy_readings_usage.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(content), "ALTER COLUMN usage TYPE NUMERIC;")
}
