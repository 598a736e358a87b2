// Package provision implements the dependency provisioning step of the
// bootstrap sequence.
//
// The Provisioner reads the dependency manifest, then shells out to the
// configured installer (pip3 by default) with the package cache disabled,
// trading startup latency for reproducible resolutions. It blocks until the
// installer finishes and surfaces its exit status unchanged.
//
// Provisioning mutates the shared package environment of the host; it is the
// only global state the bootstrap touches. The parsed package set is returned
// as an explicit Result value so the launch stage depends on data, not on
// ambient state.
//
// Failure policy: any error (missing manifest, unresolvable package,
// installer crash) is unrecoverable here. The caller aborts the bootstrap
// and the server launcher never runs.
package provision
