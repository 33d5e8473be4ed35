package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/footypool/prediction-pool/internal/leaderboard/model"
	"github.com/footypool/prediction-pool/internal/leaderboard/service"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
)

type mockService struct {
	mock.Mock
}

var _ service.Service = (*mockService)(nil)

func (m *mockService) GetWeekly(ctx context.Context, weekID string) (*model.WeeklyResponse, error) {
	args := m.Called(ctx, weekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeeklyResponse), args.Error(1)
}

func (m *mockService) GetOverall(ctx context.Context) (*model.OverallResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OverallResponse), args.Error(1)
}

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, zap.NewNop().Sugar())

	router := gin.New()
	router.GET("/leaderboard/getWeekly", h.GetWeekly)
	router.GET("/leaderboard/getOverall", h.GetOverall)
	return router
}

func perform(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_GetWeekly_Success(t *testing.T) {
	svc := new(mockService)
	svc.On("GetWeekly", mock.Anything, "week-1").
		Return(&model.WeeklyResponse{
			WeekID: "week-1",
			Entries: []model.WeeklyEntry{
				{UserID: "user-1", Name: "Alice", Score: 3},
			},
			Total: 1,
		}, nil)

	w := perform(setupRouter(svc), "/leaderboard/getWeekly?week_id=week-1")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.WeeklyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "week-1", resp.WeekID)
	assert.Equal(t, 1, resp.Total)
}

func TestHandler_GetWeekly_MissingParam(t *testing.T) {
	svc := new(mockService)

	w := perform(setupRouter(svc), "/leaderboard/getWeekly")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetWeekly")
}

func TestHandler_GetWeekly_WeekNotFound(t *testing.T) {
	svc := new(mockService)
	svc.On("GetWeekly", mock.Anything, "missing").Return(nil, weekmodel.ErrWeekNotFound)

	w := perform(setupRouter(svc), "/leaderboard/getWeekly?week_id=missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetOverall_Success(t *testing.T) {
	svc := new(mockService)
	svc.On("GetOverall", mock.Anything).
		Return(&model.OverallResponse{
			Entries: []model.OverallEntry{
				{UserID: "user-1", Name: "Alice", TotalCorrect: 5, TotalPredictions: 5, AverageAccuracy: 100},
			},
			Total: 1,
		}, nil)

	w := perform(setupRouter(svc), "/leaderboard/getOverall")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.OverallResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 100.0, resp.Entries[0].AverageAccuracy)
}

func TestHandler_GetOverall_Error(t *testing.T) {
	svc := new(mockService)
	svc.On("GetOverall", mock.Anything).Return(nil, assert.AnError)

	w := perform(setupRouter(svc), "/leaderboard/getOverall")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
