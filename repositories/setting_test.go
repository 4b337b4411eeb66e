package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingUpsert(t *testing.T) {
	setupTestDB(t)
	repo := NewSettingRepository()

	require.NoError(t, repo.Upsert("site_name", "Portfolio"))
	require.NoError(t, repo.Upsert("primary_color", "#ff6600"))

	value, err := repo.Get("site_name")
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", value)

	// overwrite keeps a single row per key
	require.NoError(t, repo.Upsert("site_name", "New Name"))

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"site_name":     "New Name",
		"primary_color": "#ff6600",
	}, all)
}

func TestSettingGetMissingKey(t *testing.T) {
	setupTestDB(t)
	repo := NewSettingRepository()

	value, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Empty(t, value)
}
