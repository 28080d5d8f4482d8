package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache/cachetest"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Conformance(t *testing.T) {
	cachetest.Run(t, func(t *testing.T) cache.Store {
		s, err := Open(context.Background(), ":memory:")
		require.NoError(t, err)
		return s
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dsn := "file:" + t.TempDir() + "/cache.db"
	ctx := context.Background()

	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Merchants().Upsert(ctx, []models.Merchant{{ID: "m1", Title: "Grocer"}}))
	require.NoError(t, s.SetCheckpoint(ctx, 1700000999))
	require.NoError(t, s.Close())

	s, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	merchants, err := s.Merchants().All(ctx)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	assert.Equal(t, "Grocer", merchants[0].Title)

	ts, ok, err := s.Checkpoint(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1700000999), ts)
}

func TestStore_CorruptPayloadIsSerializationError(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.db.ExecContext(ctx, `INSERT INTO entities (kind, key, data) VALUES ('tag', 't', 'not json')`)
	require.NoError(t, err)

	_, err = s.Tags().All(ctx)
	require.ErrorIs(t, err, common.ErrStorage)
	require.ErrorIs(t, err, common.ErrSerialization)
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), mock
}

func TestUpsert_FailedStatementRollsBackBatch(t *testing.T) {
	s, mock := newMockStore(t)
	boom := errors.New("disk I/O error")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO entities").
		WithArgs("account", "a1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO entities").
		WithArgs("account", "a2", sqlmock.AnyArg()).
		WillReturnError(boom)
	mock.ExpectRollback()

	err := s.Accounts().Upsert(context.Background(), []models.Account{{ID: "a1"}, {ID: "a2"}})
	require.ErrorIs(t, err, common.ErrStorage)
	require.ErrorIs(t, err, boom)

	var se *cache.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "upsert", se.Op)
	assert.Equal(t, "account", se.Kind)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemove_UsesCanonicalKeysInOneTransaction(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entities").
		WithArgs("instrument", "42").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM entities").
		WithArgs("instrument", "7").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.Instruments().Remove(context.Background(), []models.InstrumentID{42, 7})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_BeginFailureIsStorageError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err := s.Clear(context.Background())
	require.ErrorIs(t, err, common.ErrStorage)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckpoint_QueryFailureIsStorageError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT value FROM metadata").
		WithArgs("server_timestamp").
		WillReturnError(errors.New("locked"))

	_, ok, err := s.Checkpoint(context.Background())
	require.False(t, ok)
	require.ErrorIs(t, err, common.ErrStorage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmptyBatches_IssueNoStatements(t *testing.T) {
	s, mock := newMockStore(t)

	require.NoError(t, s.Accounts().Upsert(context.Background(), nil))
	require.NoError(t, s.Budgets().Remove(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}
