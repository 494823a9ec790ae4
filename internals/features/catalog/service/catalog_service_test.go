package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	catalogModel "schoolsg_backend/internals/features/catalog/model"
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

func TestUpsertSubject_ExistingRowIsReused(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCatalogService(gdb)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "subject_desc"}).
			AddRow(id.String(), "Physics"))

	m, err := svc.UpsertSubject(context.Background(), "Physics")
	require.NoError(t, err)
	assert.Equal(t, id, m.SubjectID)
	// no INSERT was issued: the duplicate description reuses the row
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSubject_LostInsertRaceReselects(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCatalogService(gdb)
	id := uuid.New()

	// miss, then the insert loses a concurrent race on the natural key,
	// then the re-select picks up the winner's row
	mock.ExpectQuery(`SELECT (.+) FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "subject_desc"}))
	mock.ExpectQuery(`INSERT INTO "subjects"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
	mock.ExpectQuery(`SELECT (.+) FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "subject_desc"}).
			AddRow(id.String(), "Physics"))

	m, err := svc.UpsertSubject(context.Background(), "Physics")
	require.NoError(t, err)
	assert.Equal(t, id, m.SubjectID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCCA_ExistingRowIsReused(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCatalogService(gdb)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "ccas"`).
		WillReturnRows(sqlmock.NewRows([]string{"cca_id", "cca_generic_name"}).
			AddRow(id.String(), "Basketball"))

	m, err := svc.UpsertCCA(context.Background(), "Basketball")
	require.NoError(t, err)
	assert.Equal(t, id, m.CCAID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachCCA_ReattachUpdatesInsteadOfDuplicating(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCatalogService(gdb)
	schoolID, ccaID, linkID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "ccas"`).
		WillReturnRows(sqlmock.NewRows([]string{"cca_id", "cca_generic_name"}).
			AddRow(ccaID.String(), "Basketball"))
	// the (school, cca) pair already exists
	mock.ExpectQuery(`SELECT (.+) FROM "school_ccas"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_cca_id", "school_id", "cca_id", "cca_section"}).
			AddRow(linkID.String(), schoolID.String(), ccaID.String(), "PRIMARY"))
	// so the customization is updated in place, never inserted again
	mock.ExpectExec(`UPDATE "school_ccas" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	custom := "Hoops"
	link, err := svc.AttachCCA(context.Background(), schoolID, "Basketball", &custom, catalogModel.CCASectionSecondary)
	require.NoError(t, err)
	assert.Equal(t, linkID, link.SchoolCCAID)
	assert.Equal(t, catalogModel.CCASectionSecondary, link.CCASection)
	require.NotNil(t, link.CCACustomizedName)
	assert.Equal(t, "Hoops", *link.CCACustomizedName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachCCA_NewLinkIsInserted(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewCatalogService(gdb)
	schoolID, ccaID, linkID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "ccas"`).
		WillReturnRows(sqlmock.NewRows([]string{"cca_id", "cca_generic_name"}).
			AddRow(ccaID.String(), "Basketball"))
	mock.ExpectQuery(`SELECT (.+) FROM "school_ccas"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_cca_id"}))
	mock.ExpectQuery(`INSERT INTO "school_ccas"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_cca_id"}).AddRow(linkID.String()))

	link, err := svc.AttachCCA(context.Background(), schoolID, "Basketball", nil, catalogModel.CCASectionBoth)
	require.NoError(t, err)
	assert.Equal(t, linkID, link.SchoolCCAID)
	assert.Equal(t, ccaID, link.CCAID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
