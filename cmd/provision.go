package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/oaseass/oaseass-saju/core/config"
	"github.com/oaseass/oaseass-saju/core/logger"
	"github.com/oaseass/oaseass-saju/core/provision"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// provisionCmd runs the dependency provisioning step alone.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Install the packages from the dependency manifest",
	Long: `Reads the dependency manifest and installs the listed packages with the
installer's cache disabled, so every run performs a fresh resolution. Exits
with the installer's status code on failure.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result, err := provision.New(cfg.Provision, logg).Run(ctx)
		if err != nil {
			logg.Error("Dependency provisioning failed", zap.Error(err))
			_ = logg.Sync()
			os.Exit(provision.ExitCode(err))
		}
		logg.Info("Dependencies provisioned", zap.Int("packages", len(result.Packages)))
	},
}

func init() {
	RootCmd.AddCommand(provisionCmd)
}
