// Package storage provides the object-storage client used to archive
// submitted face images.
//
// It wraps the MinIO SDK behind a small Client interface so features depend
// on operations, not on the SDK, and tests can substitute the mocks package.
//
// The archive is optional: it is only wired up when storage.enabled is set
// in the configuration.
package storage
