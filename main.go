// main.go
package main

import (
	"context"
	"flag"
	"log"

	"lotr-api/cmd"
	"lotr-api/internal/wire"
	"lotr-api/pkg/database"
	"lotr-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply the database schema before serving")
	flag.Parse()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if *migrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			logger.Fatal("Migration failed", zap.Error(err))
		}
		logger.Info("Schema applied successfully")
	}

	// Wire all dependencies
	app := wire.Wiring(db, config, logger)
	defer app.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
