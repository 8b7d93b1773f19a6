package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "compliance.db")

	db, err := InitDB(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	_, err = db.Exec("INSERT INTO preferences (key, value) VALUES (?, ?)", "k", "v")
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow("SELECT value FROM preferences WHERE key = ?", "k").Scan(&value))
	assert.Equal(t, "v", value)
}

func TestInitDB_RunsTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compliance.db")

	first, err := InitDB(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := InitDB(path)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}
