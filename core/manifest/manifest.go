package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Package is a single dependency entry from the manifest.
type Package struct {
	// Name is the package name, including any extras suffix (e.g.
	// "uvicorn[standard]").
	Name string
	// Constraint is the optional version constraint (e.g. "==0.110.0",
	// ">=1,<2"). Empty when the entry pins nothing.
	Constraint string
	// Spec is the full specifier as written in the manifest.
	Spec string
}

// constraint operators recognised at the start of the version part.
const constraintChars = "=<>!~"

// ParseFile reads and parses the manifest at path. A missing manifest is an
// error: the file is a required input, distinct from an empty one.
func ParseFile(path string) ([]Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	pkgs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return pkgs, nil
}

// Parse reads manifest entries from r: one package specifier per line,
// optionally with a version constraint. Blank lines and # comments are
// ignored. An empty manifest yields an empty package set, not an error.
func Parse(r io.Reader) ([]Package, error) {
	var pkgs []Package

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		entry := scanner.Text()

		// Strip trailing comments before trimming, so "pkg  # note" works.
		if idx := strings.Index(entry, "#"); idx >= 0 {
			entry = entry[:idx]
		}
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.HasPrefix(entry, "-") {
			return nil, fmt.Errorf("line %d: unsupported directive %q", line, entry)
		}

		pkg := parseSpecifier(entry)
		if pkg.Name == "" {
			return nil, fmt.Errorf("line %d: invalid specifier %q", line, entry)
		}
		pkgs = append(pkgs, pkg)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pkgs, nil
}

// parseSpecifier splits "name[extras]==1.2.3" into name and constraint.
func parseSpecifier(entry string) Package {
	idx := strings.IndexAny(entry, constraintChars+" \t;")
	if idx < 0 {
		return Package{Name: entry, Spec: entry}
	}
	return Package{
		Name:       strings.TrimSpace(entry[:idx]),
		Constraint: strings.TrimSpace(entry[idx:]),
		Spec:       entry,
	}
}

// Names returns the package names in manifest order.
func Names(pkgs []Package) []string {
	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name
	}
	return names
}
