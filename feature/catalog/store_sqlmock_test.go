package catalog_test

import (
	"context"
	"errors"
	"testing"

	"floorops/feature/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestLoadSizesQueryError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM `sizes`").WillReturnError(errors.New("connection lost"))

	store := catalog.NewStore(gormDB)
	_, err := store.LoadSizes(context.Background())
	assert.ErrorContains(t, err, "failed to load sizes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSizeAliasRows(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "text", "mapped_size"}).
		AddRow(1, "M122", `12"x24"`)
	mock.ExpectQuery("SELECT (.+) FROM `size_aliases`").WillReturnRows(rows)

	store := catalog.NewStore(gormDB)
	aliases, err := store.LoadSizeAliases(context.Background())
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, "M122", aliases[0].Text)
	assert.Equal(t, `12"x24"`, aliases[0].Mapped)
	assert.NoError(t, mock.ExpectationsWereMet())
}
