// Package router provides week module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/week/handler"
	"github.com/footypool/prediction-pool/internal/week/service"
)

// RegisterRoutes registers week module routes. Listings stay public,
// lifecycle and match mutations go on the admin group.
func RegisterRoutes(public gin.IRouter, admin gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(db, logger)
	h := handler.New(svc, logger)

	public.GET("/weeks/list", h.ListWeeks)
	public.GET("/weeks/getMatches", h.GetMatches)

	admin.POST("/weeks/create", h.CreateWeek)
	admin.POST("/weeks/open", h.OpenWeek)
	admin.POST("/weeks/close", h.CloseWeek)
	admin.POST("/matches/create", h.CreateMatch)
	admin.POST("/matches/setResult", h.SetMatchResult)
	admin.POST("/matches/setScore", h.SetMatchScore)
}
