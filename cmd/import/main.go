// Package main provides the fixture import CLI. It loads a season
// fixture JSON file and creates the weeks and matches it describes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	dbconfig "github.com/footypool/prediction-pool/internal/database/config"
	"github.com/footypool/prediction-pool/internal/database/database"
	"github.com/footypool/prediction-pool/internal/fixture"
	"github.com/footypool/prediction-pool/pkg/logger"
)

func main() {
	path := flag.String("file", "", "path to the fixture JSON file")
	year := flag.Int("year", time.Now().Year(), "season year the rounds belong to")
	flag.Parse()

	if *path == "" {
		log.Fatal("usage: import -file <fixture.json> [-year <year>]")
	}

	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	dbCfg := dbconfig.LoadConfigFromEnv()
	db, err := database.NewWithConfig(dbCfg)
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	importer := fixture.NewImporter(db, zapLogger)
	summary, err := importer.ImportFile(context.Background(), *path, *year)
	if err != nil {
		zapLogger.Fatalw("fixture import failed", "file", *path, "error", err)
	}

	fmt.Printf("imported %d weeks, %d matches (%d rows skipped)\n",
		summary.WeeksCreated, summary.MatchesCreated, summary.RowsSkipped)
}
