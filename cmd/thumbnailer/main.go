package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pixelforge/thumbnailer/internal/api"
	"github.com/pixelforge/thumbnailer/internal/config"
	"github.com/pixelforge/thumbnailer/internal/event"
	"github.com/pixelforge/thumbnailer/internal/pipeline"
	"github.com/pixelforge/thumbnailer/internal/repository/postgres"
	"github.com/pixelforge/thumbnailer/internal/storage"
	"github.com/pixelforge/thumbnailer/pkg/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "thumbnailer",
		Usage: "Resize uploaded images into bounded-size JPEG thumbnails",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP server accepting notification batches",
				Action: runServe,
			},
			{
				Name:  "process",
				Usage: "Process a notification batch once and exit",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "event",
						Usage: "Path to a notification batch JSON file",
					},
					&cli.StringFlag{
						Name:  "key",
						Usage: "Source object key to process as a single-record batch",
					},
					&cli.StringFlag{
						Name:    "db-url",
						Usage:   "Database connection string (overrides DB_* settings)",
						EnvVars: []string{"DATABASE_URL"},
					},
				},
				Action: runProcess,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("command failed")
	}
}

func runServe(c *cli.Context) error {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	proc, err := buildPipeline(cfg, db)
	if err != nil {
		return err
	}

	router := api.NewRouter(proc, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info().Msg("Server exiting")
	return nil
}

func runProcess(c *cli.Context) error {
	cfg := config.Load()
	logger.SetLevel(cfg.Server.Mode)

	batch, err := loadBatch(c, cfg)
	if err != nil {
		return err
	}

	var db *postgres.DB
	if url := c.String("db-url"); url != "" {
		db, err = postgres.NewDBFromURL(url)
	} else {
		db, err = postgres.NewDB(&cfg.Database)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	proc, err := buildPipeline(cfg, db)
	if err != nil {
		return err
	}

	result, err := proc.Process(c.Context, batch)
	if err != nil {
		return err
	}

	fmt.Println(result.Body)
	return nil
}

func loadBatch(c *cli.Context, cfg *config.Config) (*event.Batch, error) {
	eventPath := c.String("event")
	key := c.String("key")

	switch {
	case eventPath != "" && key != "":
		return nil, fmt.Errorf("--event and --key are mutually exclusive")
	case eventPath != "":
		f, err := os.Open(eventPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open event file: %w", err)
		}
		defer f.Close()
		return event.DecodeBatch(f)
	case key != "":
		return event.SingleKeyBatch(cfg.Pipeline.SourceBucket, key), nil
	default:
		return nil, fmt.Errorf("either --event or --key is required")
	}
}

func buildPipeline(cfg *config.Config, db *postgres.DB) (*pipeline.Pipeline, error) {
	store, err := storage.NewMinioClient(storage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Region:    cfg.Storage.Region,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	metaRepo := postgres.NewMetadataRepository(db, cfg.Pipeline.MetadataTable)

	return pipeline.New(store, metaRepo, pipeline.Config{
		SourceBucket: cfg.Pipeline.SourceBucket,
		DestBucket:   cfg.Pipeline.DestBucket,
	}), nil
}
