package launch_test

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/oaseass/oaseass-saju/core/launch"
	"github.com/oaseass/oaseass-saju/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path
}

func TestRun_PropagatesExitCode(t *testing.T) {
	script := writeScript(t, "server.sh", "#!/bin/sh\nexit 7\n")

	l := launch.New(launch.Config{Command: script}, server.Config{Port: "8000"}, zap.NewNop())
	code, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestRun_CleanShutdownIsZero(t *testing.T) {
	script := writeScript(t, "server.sh", "#!/bin/sh\nexit 0\n")

	l := launch.New(launch.Config{Command: script}, server.Config{}, zap.NewNop())
	code, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRun_ChildSeesPort(t *testing.T) {
	script := writeScript(t, "server.sh", "#!/bin/sh\necho \"$PORT\" > \"$0.out\"\nexit 0\n")

	l := launch.New(launch.Config{Command: script}, server.Config{Port: "9001"}, zap.NewNop())
	code, err := l.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, code)

	out, err := os.ReadFile(script + ".out")
	require.NoError(t, err)
	assert.Equal(t, "9001\n", string(out))
}

func TestRun_DefaultPort(t *testing.T) {
	script := writeScript(t, "server.sh", "#!/bin/sh\necho \"$PORT\" > \"$0.out\"\nexit 0\n")

	l := launch.New(launch.Config{Command: script}, server.Config{}, zap.NewNop())
	_, err := l.Run(context.Background())
	require.NoError(t, err)

	out, err := os.ReadFile(script + ".out")
	require.NoError(t, err)
	assert.Equal(t, "8000\n", string(out))
}

func TestRun_InvalidPortFailsBeforeSpawn(t *testing.T) {
	script := writeScript(t, "server.sh", "#!/bin/sh\ntouch \"$0.ran\"\nexit 0\n")

	l := launch.New(launch.Config{Command: script}, server.Config{Port: "not-a-port"}, zap.NewNop())
	code, err := l.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, code)

	_, statErr := os.Stat(script + ".ran")
	assert.True(t, os.IsNotExist(statErr), "server process must never start on a bad port")
}

func TestRun_MissingCommand(t *testing.T) {
	l := launch.New(launch.Config{
		Command: filepath.Join(t.TempDir(), "no-such-server"),
	}, server.Config{}, zap.NewNop())

	code, err := l.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, code)
}

func TestRun_ContextCancelTerminatesChild(t *testing.T) {
	script := writeScript(t, "server.sh", "#!/bin/sh\ntrap 'exit 0' TERM\nsleep 30 &\nwait $!\n")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(300 * time.Millisecond)
		cancel()
	}()

	l := launch.New(launch.Config{Command: script}, server.Config{}, zap.NewNop())

	start := time.Now()
	code, err := l.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Less(t, time.Since(start), 10*time.Second, "child must stop promptly on cancellation")
}

func TestRun_ForwardsTermination(t *testing.T) {
	script := writeScript(t, "server.sh",
		"#!/bin/sh\ntrap 'echo stopped > \"$0.out\"; exit 0' TERM\nsleep 30 &\nwait $!\n")

	go func() {
		// Give Run time to install its signal handler and start the child.
		time.Sleep(500 * time.Millisecond)
		_ = syscall.Kill(os.Getpid(), syscall.SIGTERM)
	}()

	l := launch.New(launch.Config{Command: script}, server.Config{}, zap.NewNop())
	code, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	out, err := os.ReadFile(script + ".out")
	require.NoError(t, err)
	assert.Equal(t, "stopped\n", string(out))
}
