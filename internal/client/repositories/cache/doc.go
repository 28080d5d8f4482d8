// Package cache defines the local cache contract shared by every backend.
//
// # Overview
//
// A Store holds one Table per entity kind plus a single checkpoint: the
// server timestamp up to which the cache reflects the remote ledger. Tables
// merge by identity key: Upsert replaces items whose key is already present
// and inserts the rest, Remove drops the listed keys and ignores unknown
// ones. Empty batches are accepted and touch nothing.
//
// Each kind is described once by a Kind value (name, file name and key
// extractor). Backends build their tables from these descriptors with a
// single generic implementation.
//
// # Backends
//
//   - memory:    maps guarded by one mutex, for tests and ephemeral use
//   - filestore: one JSON array per kind, atomic rewrites, advisory locks
//   - sqlstore:  embedded SQLite with goose migrations
//
// # Errors
//
// Every backend failure is reported as *StorageError, which matches
// common.ErrStorage via errors.Is and unwraps to the underlying cause.
package cache
