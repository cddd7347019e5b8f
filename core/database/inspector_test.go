package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE size_aliases (id INTEGER PRIMARY KEY, alias_text TEXT, mapped_size TEXT)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "size_aliases")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["alias_text"])
	assert.Equal(t, "text", colMap["mapped_size"])

	// PRAGMA table_info on a missing table: no error, no columns.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
