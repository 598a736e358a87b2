// Package manifest parses the dependency manifest consumed by the
// provisioner.
//
// The manifest format is one package specifier per line, optionally carrying
// a version constraint:
//
//	fastapi
//	uvicorn[standard]==0.30.1
//	pydantic>=2,<3   # comments are ignored
//
// Blank lines and comments are skipped. Installer directives (lines starting
// with "-") are rejected; the manifest enumerates packages only.
//
// A missing manifest file is an error condition (missing required input),
// distinct from an empty manifest, which simply yields no packages.
package manifest
