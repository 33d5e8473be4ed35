// Package router provides leaderboard module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/leaderboard/handler"
	"github.com/footypool/prediction-pool/internal/leaderboard/repository"
	"github.com/footypool/prediction-pool/internal/leaderboard/service"
	weekrepository "github.com/footypool/prediction-pool/internal/week/repository"
)

// RegisterRoutes registers leaderboard routes on the public router.
func RegisterRoutes(public gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(
		repository.New(db, logger),
		weekrepository.New(db, logger),
		logger,
	)
	h := handler.New(svc, logger)

	public.GET("/leaderboard/getWeekly", h.GetWeekly)
	public.GET("/leaderboard/getOverall", h.GetOverall)
}
