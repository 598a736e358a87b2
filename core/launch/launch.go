package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/oaseass/oaseass-saju/core/server"

	"go.uber.org/zap"
)

// Config holds configuration for the server launcher.
type Config struct {
	// Command is the server executable to launch. Empty means the current
	// executable (the serve subcommand runs the bundled application).
	Command string `mapstructure:"command" default:""`
	// Args is the argument string passed to the command, split on
	// whitespace.
	Args string `mapstructure:"args" default:"serve"`
}

// Launcher starts the server process in the foreground and ties its
// lifecycle to the caller's.
type Launcher struct {
	cfg    Config
	srv    server.Config
	logger *zap.Logger
}

// New creates a new Launcher. The server configuration is taken by value;
// the launcher reads nothing from ambient state after construction.
func New(cfg Config, srv server.Config, logger *zap.Logger) *Launcher {
	return &Launcher{cfg: cfg, srv: srv, logger: logger}
}

// Run validates the port, starts the server child process bound to
// 0.0.0.0:<port> and blocks until it terminates. SIGINT and SIGTERM
// received while the child runs are forwarded to it; cancelling ctx sends
// the child a SIGTERM. The child's exit code is returned so the caller can
// propagate it verbatim.
func (l *Launcher) Run(ctx context.Context) (int, error) {
	port, err := l.srv.ParsePort()
	if err != nil {
		return 1, fmt.Errorf("server startup: %w", err)
	}

	name := l.cfg.Command
	if name == "" {
		name, err = os.Executable()
		if err != nil {
			return 1, fmt.Errorf("resolve server executable: %w", err)
		}
	}
	args := strings.Fields(l.cfg.Args)

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "PORT="+strconv.Itoa(port))

	l.logger.Info("Launching server",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.String("addr", fmt.Sprintf("%s:%d", server.Host, port)),
	)

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("start server process: %w", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	cancelled := ctx.Done()
	for {
		select {
		case sig := <-sigs:
			l.logger.Info("Forwarding signal to server", zap.String("signal", sig.String()))
			_ = cmd.Process.Signal(sig)
		case <-cancelled:
			_ = cmd.Process.Signal(syscall.SIGTERM)
			// Signal once, then keep waiting for the child to exit.
			cancelled = nil
		case err := <-done:
			return exitStatus(err)
		}
	}
}

// exitStatus maps the Wait error to the bootstrap's exit code.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; no code to propagate.
			code = 1
		}
		return code, nil
	}
	return 1, err
}
