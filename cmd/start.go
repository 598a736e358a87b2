package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/oaseass/oaseass-saju/core/config"
	"github.com/oaseass/oaseass-saju/core/launch"
	"github.com/oaseass/oaseass-saju/core/logger"
	"github.com/oaseass/oaseass-saju/core/provision"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Provision dependencies and launch the server",
	Long: `Runs the two-step bootstrap sequence: install the packages listed in the
dependency manifest (fresh resolution, no cache), then launch the server
process on 0.0.0.0:$PORT. Provisioning must succeed before the server is
launched; any failure aborts the bootstrap with the failing step's exit code.`,
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

		// 3. Provision dependencies. An interrupt during installation
		// cancels the installer and aborts the bootstrap.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		result, err := provision.New(cfg.Provision, logg).Run(ctx)
		stop()
		if err != nil {
			logg.Error("Dependency provisioning failed", zap.Error(err))
			_ = logg.Sync()
			os.Exit(provision.ExitCode(err))
		}
		logg.Info("Dependencies provisioned", zap.Int("packages", len(result.Packages)))

		// 4. Launch the server and block until it terminates. The launcher
		// installs its own signal forwarding.
		code, err := launch.New(cfg.Launch, cfg.Server, logg).Run(context.Background())
		if err != nil {
			logg.Error("Server launch failed", zap.Error(err))
		}
		if code != 0 {
			logg.Info("Server exited", zap.Int("code", code))
		}
		_ = logg.Sync()
		os.Exit(code)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
