// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/user/handler"
	"github.com/footypool/prediction-pool/internal/user/repository"
	"github.com/footypool/prediction-pool/internal/user/service"
)

// RegisterRoutes registers user module routes. Admin mutations go on the
// admin group, token authentication stays public.
func RegisterRoutes(public gin.IRouter, admin gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	public.GET("/users/getByAccessKey", h.GetByAccessKey)

	admin.POST("/users/create", h.CreateUser)
	admin.GET("/users/list", h.ListUsers)
	admin.POST("/users/setIsActive", h.SetIsActive)
}
