package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGetTableColumns_MySQL(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("ID", "BIGINT(20)", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("Date", "VARCHAR(10)", "NO", "MUL", nil, "")
	rows.AddRow("Value", "DOUBLE", "YES", "", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `observations`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "observations")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	// Field and type names are normalized to lower case.
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "bigint(20)", columns[0].Type)
	assert.Equal(t, "date", columns[1].Field)
	assert.Equal(t, "double", columns[2].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_MySQLError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `observations`").WillReturnError(assert.AnError)

	_, err := GetTableColumns(db, "observations")
	assert.Error(t, err)
}
