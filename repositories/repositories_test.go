package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/portfolio-backend/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level connection at a fresh in-memory
// database for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
}
