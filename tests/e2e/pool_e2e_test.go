//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/footypool/prediction-pool/internal/database/migrate"
	leaderboardmodel "github.com/footypool/prediction-pool/internal/leaderboard/model"
	leaderboardrouter "github.com/footypool/prediction-pool/internal/leaderboard/router"
	"github.com/footypool/prediction-pool/internal/middleware"
	predictionrouter "github.com/footypool/prediction-pool/internal/prediction/router"
	userrouter "github.com/footypool/prediction-pool/internal/user/router"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
	weekrouter "github.com/footypool/prediction-pool/internal/week/router"
)

const adminToken = "e2e-test-admin-token-0001"

// PoolE2ETestSuite runs the HTTP surface against a real PostgreSQL
// store with the SQL migrations applied.
type PoolE2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	router      *gin.Engine
}

func (s *PoolE2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("prediction_pool_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../migrations"))
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()

	engine := gin.New()
	admin := engine.Group("/admin", middleware.AdminAuth(adminToken, logger))
	userrouter.RegisterRoutes(engine, admin, db, logger)
	weekrouter.RegisterRoutes(engine, admin, db, logger)
	predictionrouter.RegisterRoutes(engine, db, logger)
	leaderboardrouter.RegisterRoutes(engine, db, logger)
	s.router = engine
}

func (s *PoolE2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *PoolE2ETestSuite) do(method, path string, body interface{}, asAdmin bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if asAdmin {
		req.Header.Set(middleware.AdminTokenHeader, adminToken)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PoolE2ETestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), out))
}

func (s *PoolE2ETestSuite) TestWeekLifecycleOnPostgres() {
	w := s.do(http.MethodPost, "/admin/users/create",
		gin.H{"name": "Alice", "unique_access_key": "e2e-key-alice"}, true)
	require.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, "/admin/weeks/create", gin.H{"week_number": 10, "year": 2026}, true)
	require.Equal(s.T(), http.StatusCreated, w.Code)
	var weekResp weekmodel.WeekResponse
	s.decode(w, &weekResp)
	weekID := weekResp.Week.WeekID

	// duplicate (week_number, year) hits the DB unique constraint
	w = s.do(http.MethodPost, "/admin/weeks/create", gin.H{"week_number": 10, "year": 2026}, true)
	require.Equal(s.T(), http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/admin/weeks/open", gin.H{"week_id": weekID}, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/admin/matches/create", gin.H{
		"week_id":        weekID,
		"match_number":   1,
		"home_team_name": "Arsenal",
		"away_team_name": "Chelsea",
		"match_date":     "2026-11-07T15:00:00Z",
	}, true)
	require.Equal(s.T(), http.StatusCreated, w.Code)
	var matchResp weekmodel.MatchResponse
	s.decode(w, &matchResp)

	w = s.do(http.MethodPost, "/predictions/submit", gin.H{
		"access_key":        "e2e-key-alice",
		"match_id":          matchResp.Match.MatchID,
		"predicted_outcome": 1,
	}, false)
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/admin/matches/setResult",
		gin.H{"match_id": matchResp.Match.MatchID, "official_result": 1}, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/admin/weeks/close", gin.H{"week_id": weekID}, true)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var closeResp weekmodel.CloseWeekResponse
	s.decode(w, &closeResp)
	require.Equal(s.T(), 1, closeResp.UsersScored)

	w = s.do(http.MethodGet, "/leaderboard/getWeekly?week_id="+weekID, nil, false)
	require.Equal(s.T(), http.StatusOK, w.Code)
	var weekly leaderboardmodel.WeeklyResponse
	s.decode(w, &weekly)
	require.Equal(s.T(), 1, weekly.Total)
	require.Equal(s.T(), 1, weekly.Entries[0].Score)

	// ON CONFLICT upsert path: closing again must not duplicate rows
	w = s.do(http.MethodPost, "/admin/weeks/close", gin.H{"week_id": weekID}, true)
	require.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/leaderboard/getWeekly?week_id="+weekID, nil, false)
	var weeklyAgain leaderboardmodel.WeeklyResponse
	s.decode(w, &weeklyAgain)
	require.Equal(s.T(), 1, weeklyAgain.Total)
}

func (s *PoolE2ETestSuite) TestAdminAuthRejectsBadToken() {
	req := httptest.NewRequest(http.MethodGet, "/admin/users/list", nil)
	req.Header.Set(middleware.AdminTokenHeader, "wrong-token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func TestPoolE2ETestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e tests in short mode")
	}
	suite.Run(t, new(PoolE2ETestSuite))
}
