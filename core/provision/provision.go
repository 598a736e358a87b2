package provision

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/oaseass/oaseass-saju/core/manifest"

	"go.uber.org/zap"
)

// Config holds configuration for the dependency provisioner.
type Config struct {
	// Manifest is the path to the dependency manifest file.
	Manifest string `mapstructure:"manifest" default:"requirements.txt"`
	// Installer is the package installer executable.
	Installer string `mapstructure:"installer" default:"pip3"`
	// NoCache disables the installer's local package cache so every run
	// performs a fresh resolution.
	NoCache bool `mapstructure:"no_cache" default:"true"`
}

// Result is the outcome of a successful provisioning run, passed by value
// to the launch stage.
type Result struct {
	// Packages is the package set parsed from the manifest.
	Packages []manifest.Package
}

// Provisioner installs the packages listed in the manifest into the current
// execution environment.
type Provisioner struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a new Provisioner.
func New(cfg Config, logger *zap.Logger) *Provisioner {
	return &Provisioner{cfg: cfg, logger: logger}
}

// Run parses the manifest and invokes the installer, blocking until it
// finishes. Installer output goes straight to the process's stdout/stderr;
// no decoration is added. Any failure is fatal to the caller's bootstrap
// sequence; there is no retry and no rollback.
func (p *Provisioner) Run(ctx context.Context) (Result, error) {
	pkgs, err := manifest.ParseFile(p.cfg.Manifest)
	if err != nil {
		return Result{}, err
	}

	if len(pkgs) == 0 {
		p.logger.Info("Manifest lists no packages, skipping installer",
			zap.String("manifest", p.cfg.Manifest))
		return Result{Packages: pkgs}, nil
	}

	args := p.installArgs()
	p.logger.Info("Installing dependencies",
		zap.String("installer", p.cfg.Installer),
		zap.Strings("packages", manifest.Names(pkgs)),
		zap.Bool("no_cache", p.cfg.NoCache),
	)

	cmd := exec.CommandContext(ctx, p.cfg.Installer, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return Result{}, fmt.Errorf("installer %s failed: %w", p.cfg.Installer, err)
	}

	return Result{Packages: pkgs}, nil
}

// installArgs builds the installer invocation for the configured manifest.
func (p *Provisioner) installArgs() []string {
	args := []string{"install"}
	if p.cfg.NoCache {
		args = append(args, "--no-cache-dir")
	}
	return append(args, "-r", p.cfg.Manifest)
}

// ExitCode extracts the installer's exit code from a Run error, so the
// bootstrap can propagate it verbatim. Errors that carry no process exit
// status (missing manifest, installer not found) map to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
