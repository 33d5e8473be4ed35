package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footypool/prediction-pool/internal/database/config"
)

func TestNewWithConfig_SQLite(t *testing.T) {
	db, err := NewWithConfig(config.Config{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
	})

	require.NoError(t, err)
	require.NotNil(t, db)
	defer func() { _ = Close(db) }()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNewWithConfig_InvalidDriver(t *testing.T) {
	db, err := NewWithConfig(config.Config{Driver: "oracle"})

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("nil db", func(t *testing.T) {
		assert.ErrorContains(t, HealthCheck(ctx, nil), "nil")
	})

	t.Run("healthy sqlite", func(t *testing.T) {
		db, err := NewWithConfig(config.Config{
			Driver:     config.DriverSQLite,
			SQLitePath: ":memory:",
		})
		require.NoError(t, err)
		defer func() { _ = Close(db) }()

		assert.NoError(t, HealthCheck(ctx, db))
	})
}

func TestClose(t *testing.T) {
	t.Run("nil db is a no-op", func(t *testing.T) {
		assert.NoError(t, Close(nil))
	})

	t.Run("closes open connection", func(t *testing.T) {
		db, err := NewWithConfig(config.Config{
			Driver:     config.DriverSQLite,
			SQLitePath: ":memory:",
		})
		require.NoError(t, err)

		assert.NoError(t, Close(db))
	})
}

func TestGetStats(t *testing.T) {
	t.Run("nil db", func(t *testing.T) {
		stats, err := GetStats(nil)
		assert.Nil(t, stats)
		assert.Error(t, err)
	})

	t.Run("returns stats", func(t *testing.T) {
		db, err := NewWithConfig(config.Config{
			Driver:     config.DriverSQLite,
			SQLitePath: ":memory:",
		})
		require.NoError(t, err)
		defer func() { _ = Close(db) }()

		stats, err := GetStats(db)
		require.NoError(t, err)
		assert.NotNil(t, stats)
	})
}
