package repository

import (
	"path/filepath"
	"testing"

	"github.com/akinalp/parkapp/database"
	"github.com/stretchr/testify/require"
)

// newTestDB, geçici dizinde migration'ları uygulanmış bir SQLite açar.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}
