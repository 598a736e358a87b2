package provision_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oaseass/oaseass-saju/core/provision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	return path
}

func TestRun_Success(t *testing.T) {
	dir := t.TempDir()
	mf := writeFile(t, dir, "requirements.txt", "fastapi\nuvicorn==0.30.1\n", 0o644)
	// Installer that records its invocation and succeeds.
	installer := writeFile(t, dir, "installer.sh", "#!/bin/sh\necho \"$@\" > \"$0.args\"\nexit 0\n", 0o755)

	p := provision.New(provision.Config{Manifest: mf, Installer: installer, NoCache: true}, zap.NewNop())
	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Packages, 2)
	assert.Equal(t, "fastapi", res.Packages[0].Name)

	args, err := os.ReadFile(installer + ".args")
	require.NoError(t, err)
	assert.Equal(t, "install --no-cache-dir -r "+mf+"\n", string(args))
}

func TestRun_InstallerFailureAborts(t *testing.T) {
	dir := t.TempDir()
	mf := writeFile(t, dir, "requirements.txt", "nonexistent-package\n", 0o644)
	installer := writeFile(t, dir, "installer.sh", "#!/bin/sh\nexit 3\n", 0o755)

	p := provision.New(provision.Config{Manifest: mf, Installer: installer, NoCache: true}, zap.NewNop())
	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, provision.ExitCode(err))
}

func TestRun_MissingManifest(t *testing.T) {
	p := provision.New(provision.Config{
		Manifest:  filepath.Join(t.TempDir(), "absent.txt"),
		Installer: "true",
	}, zap.NewNop())

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, provision.ExitCode(err))
}

func TestRun_EmptyManifestSkipsInstaller(t *testing.T) {
	dir := t.TempDir()
	mf := writeFile(t, dir, "requirements.txt", "# nothing yet\n", 0o644)

	// A broken installer proves it is never invoked.
	p := provision.New(provision.Config{
		Manifest:  mf,
		Installer: filepath.Join(dir, "does-not-exist"),
		NoCache:   true,
	}, zap.NewNop())

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Packages)
}

// Running the provisioner twice against the same manifest performs the same
// fresh installation both times: no state survives between runs.
func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	mf := writeFile(t, dir, "requirements.txt", "fastapi\n", 0o644)
	installer := writeFile(t, dir, "installer.sh", "#!/bin/sh\necho \"$@\" >> \"$0.log\"\nexit 0\n", 0o755)

	p := provision.New(provision.Config{Manifest: mf, Installer: installer, NoCache: true}, zap.NewNop())

	first, err := p.Run(context.Background())
	require.NoError(t, err)
	second, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	log, err := os.ReadFile(installer + ".log")
	require.NoError(t, err)
	want := "install --no-cache-dir -r " + mf + "\n"
	assert.Equal(t, want+want, string(log))
}

func TestExitCode_NilError(t *testing.T) {
	assert.Equal(t, 0, provision.ExitCode(nil))
}
