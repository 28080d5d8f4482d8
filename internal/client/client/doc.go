// Package client talks to the remote ledger service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Diff
//     exchanges local changes for server changes since a checkpoint, and
//     Suggest asks for a categorisation of a payee or comment.
//  2. A concrete HTTP implementation (see HTTPClient) that posts JSON with a
//     bearer token and maps failures to sentinel errors.
//
// # Error Handling
//
// Network failures match ErrUnavailable. A non-success status is returned as
// *APIError carrying the status code and response text; 401 and 403 also
// match ErrUnauthorized. Payloads that cannot be decoded match
// common.ErrSerialization.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call honors the context
// deadline in addition to the configured request timeout.
package client
