// Package models defines the ledger entities mirrored in the local cache,
// their typed identifiers, and the envelopes exchanged with the remote
// diff and suggest endpoints.
//
// Entities are plain data. Identity is carried by the ID field of each type,
// except Budget, which has no server identifier and is keyed by BudgetKey.
package models
