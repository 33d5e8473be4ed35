// Package main provides the entry point for the HTTP server.
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/config"
	dbconfig "github.com/footypool/prediction-pool/internal/database/config"
	"github.com/footypool/prediction-pool/internal/database/database"
	"github.com/footypool/prediction-pool/internal/database/migrate"
	"github.com/footypool/prediction-pool/internal/health"
	"github.com/footypool/prediction-pool/internal/leaderboard/router"
	"github.com/footypool/prediction-pool/internal/middleware"
	predictionmodel "github.com/footypool/prediction-pool/internal/prediction/model"
	predictionrouter "github.com/footypool/prediction-pool/internal/prediction/router"
	scoremodel "github.com/footypool/prediction-pool/internal/score/model"
	usermodel "github.com/footypool/prediction-pool/internal/user/model"
	userrouter "github.com/footypool/prediction-pool/internal/user/router"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
	weekrouter "github.com/footypool/prediction-pool/internal/week/router"
	"github.com/footypool/prediction-pool/pkg/logger"
)

func main() {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	dbCfg := dbconfig.LoadConfigFromEnv()
	db, err := database.NewWithConfig(dbCfg)
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := applySchema(db, dbCfg); err != nil {
		zapLogger.Fatalw("failed to apply database schema", "error", err)
	}

	engine := gin.New()
	engine.Use(middleware.Logger(zapLogger))
	engine.Use(middleware.Recovery(zapLogger))

	healthHandler := health.New(db, zapLogger)
	engine.GET("/health", healthHandler.Check)

	admin := engine.Group("/admin", middleware.AdminAuth(cfg.Admin.Token, zapLogger))

	userrouter.RegisterRoutes(engine, admin, db, zapLogger)
	weekrouter.RegisterRoutes(engine, admin, db, zapLogger)
	predictionrouter.RegisterRoutes(engine, db, zapLogger)
	router.RegisterRoutes(engine, db, zapLogger)

	address := cfg.Server.GetAddress()
	zapLogger.Infow("starting server", "address", address, "driver", dbCfg.Driver)
	if err := engine.Run(address); err != nil {
		zapLogger.Fatalw("server stopped", "error", err)
	}
}

// applySchema runs SQL migrations on postgres; the sqlite demo store is
// schema-managed by AutoMigrate.
func applySchema(db *gorm.DB, dbCfg dbconfig.Config) error {
	if dbCfg.Driver == dbconfig.DriverSQLite {
		return db.AutoMigrate(
			&usermodel.User{},
			&weekmodel.Week{},
			&weekmodel.Match{},
			&predictionmodel.Prediction{},
			&scoremodel.UserScore{},
		)
	}
	return migrate.Migrate(db)
}
