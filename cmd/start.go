package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"stack-manager/core/config"
	"stack-manager/core/loader"
	"stack-manager/core/logger"
	"stack-manager/core/middleware/auth"
	"stack-manager/core/middleware/rayid"
	"stack-manager/core/photos"

	"stack-manager/feature/albums"
	"stack-manager/feature/stacks"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the stack manager server",
	Long: `Starts the HTTP server exposing plan and run endpoints, and the
optional maintenance schedule (SERVER_SCHEDULE).`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if cfg.Server.ApiKey == "" {
			logg.Fatal("SERVER_API_KEY is required to start the server")
		}
		if err := cfg.Server.ValidateSchedule(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}

		// 3. Photo Service client and optional plan export
		if err := cfg.Immich.Validate(); err != nil {
			logg.Fatal("Invalid photo service configuration", zap.Error(err))
		}
		client, err := photos.NewClient(cfg.Immich)
		if err != nil {
			logg.Fatal("Failed to create photo service client", zap.Error(err))
		}
		exporter, err := newExporter(cfg.Storage, logg)
		if err != nil {
			logg.Fatal("Failed to create plan exporter", zap.Error(err))
		}

		stackService := stacks.NewService(client, logg, exporter)
		albumService := albums.NewService(client, logg)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(stacks.NewFeature(stackService))
		mgr.Register(albums.NewFeature(albumService))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Loaded features", zap.Strings("features", loaded))

		// 7. Optional schedule
		if cfg.Server.HasSchedule() {
			scheduler, err := stacks.NewScheduler(stackService, cfg.Server.Schedule, logg)
			if err != nil {
				logg.Fatal("Failed to create scheduler", zap.Error(err))
			}
			scheduler.Start()
			defer func() {
				<-scheduler.Stop().Done()
			}()
			logg.Info("Scheduled maintenance enabled", zap.String("schedule", cfg.Server.Schedule))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
