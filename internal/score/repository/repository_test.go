package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/score/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
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
	`).Error
	require.NoError(t, err)

	return db
}

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	return New(setupTestDB(t), zap.NewNop().Sugar())
}

func TestRepository_Upsert_Insert(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	score := &model.UserScore{
		UserID:             "user-1",
		WeekID:             "week-1",
		CorrectPredictions: 2,
		TotalPredictions:   3,
		Score:              2,
	}
	require.NoError(t, repo.Upsert(ctx, score))
	assert.NotEmpty(t, score.ScoreID)

	scores, err := repo.ListByWeek(ctx, "week-1")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 2, scores[0].Score)
}

func TestRepository_Upsert_Overwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.UserScore{
		UserID: "user-1", WeekID: "week-1",
		CorrectPredictions: 1, TotalPredictions: 2, Score: 1,
	}))
	require.NoError(t, repo.Upsert(ctx, &model.UserScore{
		UserID: "user-1", WeekID: "week-1",
		CorrectPredictions: 3, TotalPredictions: 4, Score: 3,
	}))

	scores, err := repo.ListByWeek(ctx, "week-1")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 3, scores[0].CorrectPredictions)
	assert.Equal(t, 4, scores[0].TotalPredictions)
	assert.Equal(t, 3, scores[0].Score)
}

func TestRepository_ListByWeek_Ordering(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	rows := []*model.UserScore{
		{UserID: "user-a", WeekID: "week-1", CorrectPredictions: 1, TotalPredictions: 3, Score: 1},
		{UserID: "user-b", WeekID: "week-1", CorrectPredictions: 3, TotalPredictions: 3, Score: 3},
		{UserID: "user-c", WeekID: "week-1", CorrectPredictions: 2, TotalPredictions: 2, Score: 2},
	}
	for _, row := range rows {
		require.NoError(t, repo.Upsert(ctx, row))
	}

	scores, err := repo.ListByWeek(ctx, "week-1")
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, "user-b", scores[0].UserID)
	assert.Equal(t, "user-c", scores[1].UserID)
	assert.Equal(t, "user-a", scores[2].UserID)
}

func TestRepository_ListByWeek_FiltersOtherWeeks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.UserScore{UserID: "user-1", WeekID: "week-1"}))
	require.NoError(t, repo.Upsert(ctx, &model.UserScore{UserID: "user-1", WeekID: "week-2"}))

	scores, err := repo.ListByWeek(ctx, "week-1")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "week-1", scores[0].WeekID)
}

func TestRepository_ListAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.UserScore{UserID: "user-1", WeekID: "week-1"}))
	require.NoError(t, repo.Upsert(ctx, &model.UserScore{UserID: "user-1", WeekID: "week-2"}))
	require.NoError(t, repo.Upsert(ctx, &model.UserScore{UserID: "user-2", WeekID: "week-1"}))

	scores, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, scores, 3)
}

func TestRepository_ListAll_Empty(t *testing.T) {
	repo := newTestRepository(t)

	scores, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}
