package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupCatalogTestDB wires a GORM instance over sqlmock so the catalog
// queries can be asserted at the SQL level.
func setupCatalogTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		mockDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm over sqlmock: %v", err)
	}

	return db, mock
}

func TestCatalogRepository_IsEmpty(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"count(*)"}).AddRow(0)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `tracks`").WillReturnRows(rows)

	empty, err := repo.IsEmpty()

	assert.NoError(t, err)
	assert.True(t, empty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_IsEmpty_Seeded(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"count(*)"}).AddRow(4)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `tracks`").WillReturnRows(rows)

	empty, err := repo.IsEmpty()

	assert.NoError(t, err)
	assert.False(t, empty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_List_OrdersByLevel(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "level", "title", "description", "objective"}).
		AddRow(1, 1, "Base", "d1", "o1").
		AddRow(2, 2, "Performance", "d2", "o2")
	mock.ExpectQuery("SELECT \\* FROM `tracks` ORDER BY level ASC").WillReturnRows(rows)

	tracks, err := repo.List()

	assert.NoError(t, err)
	assert.Len(t, tracks, 2)
	assert.Equal(t, 1, tracks[0].Level)
	assert.Equal(t, "Performance", tracks[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_FindByLevel_NotFound(t *testing.T) {
	db, mock := setupCatalogTestDB(t)
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "level", "title", "description", "objective"})
	mock.ExpectQuery("SELECT \\* FROM `tracks` WHERE level = \\?").WillReturnRows(rows)

	track, err := repo.FindByLevel(9)

	assert.Nil(t, track)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
