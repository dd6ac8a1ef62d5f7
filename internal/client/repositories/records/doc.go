// Package records is the client's local key-value store.
//
// # Overview
//
// Repository stores opaque byte values under string keys. The auth service
// keeps two keys in it: the user registry (a JSON array of credential
// records) and the session marker (a JSON user, absent when logged out).
//
// Implementations:
//
//   - SQLiteRepository: durable, backed by the goose-migrated "records" table
//   - MemoryRepository: process-local map, used in tests and ":memory:" mode
//
// # Absent keys
//
// Get returns (nil, nil) for a missing key; Delete of a missing key is a no-op.
//
// # Concurrency
//
// Update is the only read-modify-write primitive. It runs inside a single
// transaction (SQLite) or under the store mutex (memory), so two concurrent
// updates of the same key never interleave.
package records
