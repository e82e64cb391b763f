package storage

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *JobRepo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := NewSQLite(filepath.Join(t.TempDir(), "state.db"), logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewJobRepo(db, logger)
}

func TestSyncInsertsNewJobs(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Sync([]string{"alpha", "folder/beta"}))

	jobs, err := repo.ListEnabled()
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "alpha", jobs[0].FullName)
	assert.Equal(t, "folder/beta", jobs[1].FullName)
	assert.True(t, jobs[0].Enabled)
	assert.Zero(t, jobs[0].LastSeenBuild)
}

func TestSyncDisablesVanishedJobs(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Sync([]string{"alpha", "beta"}))
	require.NoError(t, repo.Sync([]string{"beta"}))

	jobs, err := repo.ListEnabled()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "beta", jobs[0].FullName)
}

func TestSyncReenablesReturningJobs(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Sync([]string{"alpha"}))
	require.NoError(t, repo.Sync([]string{}))
	require.NoError(t, repo.Sync([]string{"alpha"}))

	jobs, err := repo.ListEnabled()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "alpha", jobs[0].FullName)
}

func TestUpdateLastSeen(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Sync([]string{"alpha"}))
	require.NoError(t, repo.UpdateLastSeen("alpha", 42))

	jobs, err := repo.ListEnabled()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, int64(42), jobs[0].LastSeenBuild)
}

func TestUpdateLastSeenForUnknownJob(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.UpdateLastSeen("missing", 7))
}
