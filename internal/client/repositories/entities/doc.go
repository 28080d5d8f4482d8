// Package entities stores serialized cache entities in SQLite.
//
// # Overview
//
// Rows are addressed by (kind, key): kind is the entity kind name
// ("account", "transaction", ...) and key is the canonical string form of
// the identity key. The payload is the JSON encoding of the entity; this
// package never inspects it.
//
// SQLiteRepository runs over a dbx.DBTX, so callers can group several
// statements in one transaction with dbx.WithTx.
//
// Typical Usage
//
//	repo := entities.NewSQLiteRepository(tx)
//	_ = repo.Upsert(ctx, "account", "a-1", payload)
//	rows, _ := repo.List(ctx, "account")
//	_ = repo.Delete(ctx, "account", "a-1")
package entities
