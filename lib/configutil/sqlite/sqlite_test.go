package configsqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS "in" (roll_num TEXT PRIMARY KEY NOT NULL);
CREATE TABLE IF NOT EXISTS "out" (roll_num TEXT PRIMARY KEY NOT NULL);
`

func TestOpenFileCreatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.db")

	for i := 0; i < 2; i++ {
		db, err := Struct{File: path}.OpenDB(testSchema)
		require.NoError(t, err)

		var count int
		err = db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN ('in', 'out')`).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.NoError(t, db.Close())
	}
}

func TestOpenWithoutFile(t *testing.T) {
	_, err := Struct{}.OpenDB(testSchema)
	require.Error(t, err)
}

func TestApplySchemaError(t *testing.T) {
	db, err := Struct{File: ":memory:"}.OpenDB("")
	require.NoError(t, err)
	defer db.Close()

	err = ApplySchema(db, "CREATE TABLE broken (")
	require.Error(t, err)
}
