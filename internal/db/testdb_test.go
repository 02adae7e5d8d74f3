package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/karthikas/kmcward/internal/config"
	"github.com/karthikas/kmcward/internal/models"
)

// newTestDB points the package at a fresh on-disk SQLite database with
// migrations run and the default admin seeded. Closed when the test ends.
func newTestDB(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		DataDir: dir,
		Database: config.DatabaseConfig{
			Path: filepath.Join(dir, "test.db"),
		},
	}
	require.NoError(t, Initialize(cfg))
	t.Cleanup(func() {
		Close()
		DB = nil
	})
}

// setClock pins the session clock for a test.
func setClock(t *testing.T, now time.Time) *time.Time {
	t.Helper()

	current := now
	timeNow = func() time.Time { return current }
	t.Cleanup(func() { timeNow = time.Now })
	return &current
}

func newTestBaby(t *testing.T, name, uhid string) *models.Baby {
	t.Helper()
	baby, err := AddBaby(name, uhid, "")
	require.NoError(t, err)
	return baby
}

func newTestParent(t *testing.T, name, mobile string, babyID *uint) *models.Parent {
	t.Helper()
	parent, err := AddParent(name, mobile, babyID)
	require.NoError(t, err)
	return parent
}
