package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolsg_backend/internals/helpers/errs"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

// Expectations are matched in order, so passing proves both the statement
// set and the sequence: every join table strictly before the school row,
// all inside one transaction.
func TestDelete_JoinRowsBeforeSchoolRowInOneTx(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewDirectoryService(gdb)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_name"}).
			AddRow(id.String(), "Tao Nan School"))

	mock.ExpectBegin()
	for _, table := range []string{
		"school_subjects", "school_ccas", "school_programmes", "school_distinctives", "schools",
	} {
		mock.ExpectExec(`DELETE FROM "` + table + `"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_JoinRowFailureRollsBackBeforeSchoolRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewDirectoryService(gdb)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_name"}).
			AddRow(id.String(), "Tao Nan School"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "school_subjects"`).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrQueryExecution))
	// no DELETE against "schools" was ever issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_MissingSchoolIsNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewDirectoryService(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}))

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	// no transaction was opened
	assert.NoError(t, mock.ExpectationsWereMet())
}
