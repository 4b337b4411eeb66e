package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/portfolio-backend/database"
	"github.com/portfolio-backend/lib/uploads"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest wires an in-memory database and a throwaway upload root
func setupTest(t *testing.T) *uploads.Manager {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })

	return uploads.NewManager(t.TempDir(), "/storage")
}

func makeFileHeader(t *testing.T, filename string, size int) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}
