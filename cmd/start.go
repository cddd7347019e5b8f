package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	corecleaning "floorops/core/cleaning"
	"floorops/core/config"
	"floorops/core/database"
	"floorops/core/loader"
	"floorops/core/logger"
	"floorops/core/middleware/auth"
	"floorops/core/middleware/rayid"
	"floorops/core/storage"

	"floorops/feature/catalog"
	"floorops/feature/cleaning"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "floorops/docs/swagger"
)

// @title floorops API
// @version 1.0
// @description Spreadsheet cleaning and dictionary API for the flooring back office.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the floorops server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to Database (Optional). Without it the cleaning feature
		// runs against an empty dictionary and the catalog stays disabled.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to dictionary database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Initialize Storage (upload archive)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		catalogFeature := catalog.NewFeature(db, logg)
		mgr.Register(catalogFeature)

		var aliasStore *catalog.Store
		if catalogFeature.IsEnabled() {
			aliasStore = catalogFeature.Service().Store()
		}
		cleaningFeature := cleaning.NewFeature(storeOrNil(aliasStore), store, cfg.Storage.Bucket, cfg.Cleaning, logg)
		mgr.Register(cleaningFeature)

		// Middleware: ray id first so everything downstream is traceable.
		app.Use(rayid.New())

		// Request logging with Zap + ray id.
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

		// Swagger documentation (public).
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects the API itself.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Upload archive bucket + session expiry sweeper
		if err := cleaningFeature.Service().EnsureBucket(context.Background()); err != nil {
			logg.Warn("Upload archive unavailable", zap.Error(err))
		}
		sweepCtx, stopSweep := context.WithCancel(context.Background())
		defer stopSweep()
		cleaningFeature.Service().StartSweeper(sweepCtx)

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// storeOrNil keeps a typed-nil *catalog.Store from masquerading as a non-nil
// AliasStore interface value.
func storeOrNil(s *catalog.Store) corecleaning.AliasStore {
	if s == nil {
		return nil
	}
	return s
}

func init() {
	RootCmd.AddCommand(startCmd)
}
