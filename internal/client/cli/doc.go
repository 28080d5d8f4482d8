// Package cli provides the interactive zenkeeper command-line client.
//
// It wires configuration, the local cache, the remote API client and an
// interactive REPL. Typical flow: read the token (prompting for it when it is
// not configured), open the cache backend, start background sync, and
// execute user commands against the cache.
//
// Key features:
//   - sync / fullsync with the server
//   - accounts, tags and filtered transaction listings from the cache
//   - addtx / deltx to create or remove transactions
//   - suggest to categorise a payee
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
