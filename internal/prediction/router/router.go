// Package router provides prediction module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/prediction/handler"
	"github.com/footypool/prediction-pool/internal/prediction/repository"
	"github.com/footypool/prediction-pool/internal/prediction/service"
	userrepository "github.com/footypool/prediction-pool/internal/user/repository"
	weekrepository "github.com/footypool/prediction-pool/internal/week/repository"
)

// RegisterRoutes registers prediction module routes on the public router.
// Participants authenticate with their access key, not the admin token.
func RegisterRoutes(public gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(
		repository.New(db, logger),
		userrepository.New(db, logger),
		weekrepository.New(db, logger),
		logger,
	)
	h := handler.New(svc, logger)

	public.POST("/predictions/submit", h.Submit)
	public.GET("/predictions/getByUser", h.ListByUser)
}
