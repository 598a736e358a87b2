package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oaseass/oaseass-saju/core/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"# web stack",
		"fastapi",
		"",
		"uvicorn[standard]==0.30.1",
		"pydantic>=2,<3  # schema models",
		"requests ~=2.31",
	}, "\n")

	pkgs, err := manifest.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, pkgs, 4)

	assert.Equal(t, manifest.Package{Name: "fastapi", Spec: "fastapi"}, pkgs[0])
	assert.Equal(t, "uvicorn[standard]", pkgs[1].Name)
	assert.Equal(t, "==0.30.1", pkgs[1].Constraint)
	assert.Equal(t, "pydantic", pkgs[2].Name)
	assert.Equal(t, ">=2,<3", pkgs[2].Constraint)
	assert.Equal(t, "requests", pkgs[3].Name)
	assert.Equal(t, "~=2.31", pkgs[3].Constraint)

	assert.Equal(t, []string{"fastapi", "uvicorn[standard]", "pydantic", "requests"}, manifest.Names(pkgs))
}

func TestParse_Empty(t *testing.T) {
	pkgs, err := manifest.Parse(strings.NewReader("\n# nothing here\n\n"))
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestParse_RejectsDirectives(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader("-r other.txt\n"))
	assert.Error(t, err)

	_, err = manifest.Parse(strings.NewReader("--index-url https://example.invalid\n"))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte("fastapi==0.111.0\n"), 0o644))

	pkgs, err := manifest.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "fastapi", pkgs[0].Name)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := manifest.ParseFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

// Parsing the same manifest twice yields the same package set; the parser
// keeps no state between runs.
func TestParse_Deterministic(t *testing.T) {
	input := "fastapi\nuvicorn==0.30.1\n"

	first, err := manifest.Parse(strings.NewReader(input))
	require.NoError(t, err)
	second, err := manifest.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
