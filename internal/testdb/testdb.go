// Package testdb opens an isolated, migrated in-memory database per test.
package testdb

import (
	"testing"

	"hospitality/configs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := configs.OpenDatabase("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	t.Cleanup(func() { _ = configs.CloseDatabase(db) })
	return db
}
