package migrate

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGetMigrationsPath(t *testing.T) {
	t.Run("default path", func(t *testing.T) {
		os.Unsetenv("MIGRATIONS_PATH")

		assert.Equal(t, "migrations", GetMigrationsPath())
	})

	t.Run("custom path from env", func(t *testing.T) {
		os.Setenv("MIGRATIONS_PATH", "custom/migrations")
		defer os.Unsetenv("MIGRATIONS_PATH")

		assert.Equal(t, "custom/migrations", GetMigrationsPath())
	})
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	assert.ErrorContains(t, err, "nil")
}

func TestMigrate_MissingDirectory(t *testing.T) {
	os.Setenv("MIGRATIONS_PATH", "nonexistent/migrations")
	defer os.Unsetenv("MIGRATIONS_PATH")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = Migrate(db)
	assert.ErrorContains(t, err, "does not exist")
}
