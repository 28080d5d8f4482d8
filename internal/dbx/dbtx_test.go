package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func insertEntity(ctx context.Context, tx DBTX, key string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO entities(kind, key, data) VALUES ('accounts', ?, '{}')`, key)
	return err
}

func TestWithTx_CommitsBatch(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO entities").WithArgs("a1").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO entities").WithArgs("a2").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		for _, k := range []string{"a1", "a2"} {
			if err := insertEntity(ctx, tx, k); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO entities").WithArgs("a1").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return insertEntity(ctx, tx, "a1")
	})
	require.EqualError(t, err, "disk full")
}

func TestWithTx_RollsBackAndRepanics(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	require.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			panic("kaput")
		})
	})
}

func TestWithTx_CommitErrorIsReturned(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("locked"))

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error { return nil })
	require.EqualError(t, err, "locked")
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("closed"))

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	require.False(t, called)
}

func TestWithTx_BatchInvisibleAfterRollback(t *testing.T) {
	db, err := sql.Open("sqlite", "file:dbx_batch?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE entities (kind TEXT, key TEXT, data BLOB, PRIMARY KEY(kind, key))`)
	require.NoError(t, err)

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertEntity(ctx, tx, "a1"))
		return insertEntity(ctx, tx, "a1")
	})
	require.Error(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM entities`).Scan(&n))
	require.Zero(t, n)
}
