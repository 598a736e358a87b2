package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/oaseass/oaseass-saju/core/config"
	"github.com/oaseass/oaseass-saju/core/database"
	"github.com/oaseass/oaseass-saju/core/loader"
	"github.com/oaseass/oaseass-saju/core/logger"
	"github.com/oaseass/oaseass-saju/core/middleware/rayid"
	"github.com/oaseass/oaseass-saju/core/storage"

	"github.com/oaseass/oaseass-saju/feature/face"
	"github.com/oaseass/oaseass-saju/feature/health"
	"github.com/oaseass/oaseass-saju/feature/report"
	"github.com/oaseass/oaseass-saju/feature/saju"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/oaseass/oaseass-saju/docs/swagger"
)

// @title Oasis Fortune API
// @version 0.1.0
// @description 사주/관상 분석용 데모 API + /client 정적 웹 미니앱 서빙
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the fortune API server",
	Long:  `Starts the HTTP server on 0.0.0.0:$PORT and initializes all enabled features.`,
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

		// 3. Resolve the listen address before anything else; a malformed
		// PORT is a startup error.
		addr, err := cfg.Server.Addr()
		if err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}

		// 4. Connect to Database (Optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				if err := db.AutoMigrate(&report.Record{}); err != nil {
					logg.Warn("Report table migration failed", zap.Error(err))
				}
				logg.Info("Connected to report database")
			}
		}

		// 5. Initialize Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			if client, err := storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("Optional storage client creation failed", zap.Error(err))
			} else {
				store = client
				logg.Info("Face image archive enabled", zap.String("bucket", cfg.Storage.Bucket))
			}
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(health.NewFeature())
		mgr.Register(saju.NewFeature(logg))
		mgr.Register(face.NewFeature(store, cfg.Storage.Bucket, logg))
		mgr.Register(report.NewFeature(db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. CORS, wide open like the original mini-app expects.
		app.Use(cors.New())

		// 3. Logging Middleware (Custom to use Zap + RayID)
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

		// 4. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Static Web Client
		if _, err := os.Stat(cfg.Server.ClientDir); err == nil {
			app.Static("/client", cfg.Server.ClientDir, fiber.Static{Index: "index.html"})
		} else {
			logg.Warn("Static client directory not found, /client disabled",
				zap.String("dir", cfg.Server.ClientDir))
		}

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", addr))
			if err := app.Listen(addr); err != nil {
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
	RootCmd.AddCommand(serveCmd)
}
