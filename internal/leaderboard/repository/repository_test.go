package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
		CREATE TABLE users (
			user_id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			unique_access_key VARCHAR(255) NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`).Error)

	require.NoError(t, db.Exec(`
		CREATE TABLE user_scores (
			score_id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			week_id VARCHAR(36) NOT NULL,
			correct_predictions INTEGER NOT NULL DEFAULT 0,
			total_predictions INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, week_id)
		)
	`).Error)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, userID, name string) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO users (user_id, name, unique_access_key) VALUES (?, ?, ?)",
		userID, name, "key-"+userID,
	).Error)
}

func seedScore(t *testing.T, db *gorm.DB, scoreID, userID, weekID string, correct, total, score int) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO user_scores (score_id, user_id, week_id, correct_predictions, total_predictions, score) "+
			"VALUES (?, ?, ?, ?, ?, ?)",
		scoreID, userID, weekID, correct, total, score,
	).Error)
}

func TestRepository_ListWeekly_OrderAndNames(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())
	ctx := context.Background()

	seedUser(t, db, "user-a", "Alice")
	seedUser(t, db, "user-b", "Bob")
	seedUser(t, db, "user-c", "Carol")

	seedScore(t, db, "s1", "user-a", "week-1", 1, 3, 1)
	seedScore(t, db, "s2", "user-b", "week-1", 3, 3, 3)
	seedScore(t, db, "s3", "user-c", "week-1", 2, 2, 2)
	seedScore(t, db, "s4", "user-a", "week-2", 5, 5, 5)

	entries, err := repo.ListWeekly(ctx, "week-1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Bob", entries[0].Name)
	assert.Equal(t, "Carol", entries[1].Name)
	assert.Equal(t, "Alice", entries[2].Name)
}

func TestRepository_ListWeekly_TieBrokenByCorrect(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	seedUser(t, db, "user-a", "Alice")
	seedUser(t, db, "user-b", "Bob")

	// equal score, Bob has more correct predictions stored
	seedScore(t, db, "s1", "user-a", "week-1", 1, 4, 2)
	seedScore(t, db, "s2", "user-b", "week-1", 2, 4, 2)

	entries, err := repo.ListWeekly(context.Background(), "week-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bob", entries[0].Name)
}

func TestRepository_ListWeekly_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	entries, err := repo.ListWeekly(context.Background(), "week-1")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestRepository_ListAllScores(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db, zap.NewNop().Sugar())

	seedUser(t, db, "user-a", "Alice")
	seedScore(t, db, "s1", "user-a", "week-1", 1, 2, 1)
	seedScore(t, db, "s2", "user-a", "week-2", 2, 2, 2)

	rows, err := repo.ListAllScores(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Name)
}
