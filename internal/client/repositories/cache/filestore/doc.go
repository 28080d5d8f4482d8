// Package filestore persists the cache as JSON files in one directory.
//
// # Layout
//
//	<dir>/
//	  .lock                 sentinel for advisory locking, never removed
//	  meta.json             {"server_timestamp": N}
//	  accounts.json         one JSON array per entity kind
//	  transactions.json
//	  ...
//
// A missing file is an empty collection. Writes replace a whole file: the
// new content goes to "<name>.tmp", is synced, and is renamed over the
// target, so readers never see a partial file and a crash keeps the old one.
//
// # Locking
//
// Every operation first takes an in-process lock (a weighted semaphore that
// respects context cancellation), then an advisory lock on the sentinel:
// shared for reads, exclusive for writes. Both are released on every return
// path. Advisory locks arbitrate between processes only; the in-process lock
// serializes goroutines sharing one Store.
package filestore
