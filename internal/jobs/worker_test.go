package jobs_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"linkstash/internal/bookmark"
	"linkstash/internal/jobs"
	"linkstash/internal/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(&bookmark.Bookmark{}, &jobs.Job{}))
	return gdb
}

func newWorker(gdb *gorm.DB) *jobs.Worker {
	return &jobs.Worker{
		ID:   "test-worker",
		Repo: &jobs.Repo{DB: gdb},
		DB:   gdb,
		Log:  logger.Nop(),
	}
}

func jobStatus(t *testing.T, gdb *gorm.DB, id uint64) string {
	t.Helper()
	var j jobs.Job
	require.NoError(t, gdb.Where("id = ?", id).First(&j).Error)
	return j.Status
}

func TestPurgeJobDeletesTrashedBookmark(t *testing.T) {
	gdb := newTestDB(t)

	deletedAt := time.Now().Add(-8 * 24 * time.Hour)
	b := bookmark.Bookmark{UserID: 1, Title: "old", URL: "https://old.example.com", DeletedAt: &deletedAt}
	require.NoError(t, gdb.Create(&b).Error)

	j := jobs.Job{UserID: 1, Type: jobs.TypeTrashPurge, BookmarkID: b.ID, RunAt: time.Now(), Status: jobs.StatusRunning}
	require.NoError(t, gdb.Create(&j).Error)

	newWorker(gdb).Handle(&j)

	var n int64
	require.NoError(t, gdb.Model(&bookmark.Bookmark{}).Where("id = ?", b.ID).Count(&n).Error)
	require.Zero(t, n, "trashed bookmark past retention must be hard-deleted")
	require.Equal(t, jobs.StatusDone, jobStatus(t, gdb, j.ID))
}

// A restore between enqueue and execution wins: the purge becomes a
// no-op instead of deleting live data.
func TestPurgeJobSkipsRestoredBookmark(t *testing.T) {
	gdb := newTestDB(t)

	b := bookmark.Bookmark{UserID: 1, Title: "kept", URL: "https://kept.example.com"}
	require.NoError(t, gdb.Create(&b).Error)

	j := jobs.Job{UserID: 1, Type: jobs.TypeTrashPurge, BookmarkID: b.ID, RunAt: time.Now(), Status: jobs.StatusRunning}
	require.NoError(t, gdb.Create(&j).Error)

	newWorker(gdb).Handle(&j)

	var n int64
	require.NoError(t, gdb.Model(&bookmark.Bookmark{}).Where("id = ?", b.ID).Count(&n).Error)
	require.EqualValues(t, 1, n, "restored bookmark must survive the sweep")
	require.Equal(t, jobs.StatusDone, jobStatus(t, gdb, j.ID))
}

func TestPurgeJobAlreadyGone(t *testing.T) {
	gdb := newTestDB(t)

	j := jobs.Job{UserID: 1, Type: jobs.TypeTrashPurge, BookmarkID: 12345, RunAt: time.Now(), Status: jobs.StatusRunning}
	require.NoError(t, gdb.Create(&j).Error)

	newWorker(gdb).Handle(&j)

	require.Equal(t, jobs.StatusDone, jobStatus(t, gdb, j.ID))
}

func TestUnknownJobTypeFails(t *testing.T) {
	gdb := newTestDB(t)

	j := jobs.Job{UserID: 1, Type: "NOPE", BookmarkID: 1, RunAt: time.Now(), Status: jobs.StatusRunning}
	require.NoError(t, gdb.Create(&j).Error)

	newWorker(gdb).Handle(&j)

	require.Equal(t, jobs.StatusFailed, jobStatus(t, gdb, j.ID))
}

func TestEnqueueAndCancel(t *testing.T) {
	gdb := newTestDB(t)

	runAt := time.Now().Add(7 * 24 * time.Hour)
	require.NoError(t, jobs.EnqueuePurge(gdb, 1, 42, runAt))

	var n int64
	require.NoError(t, gdb.Model(&jobs.Job{}).Where("status = ?", jobs.StatusPending).Count(&n).Error)
	require.EqualValues(t, 1, n)

	// cancel scoped by owner: another user's cancel is a no-op
	require.NoError(t, jobs.CancelPendingPurge(gdb, 2, 42))
	require.NoError(t, gdb.Model(&jobs.Job{}).Where("status = ?", jobs.StatusPending).Count(&n).Error)
	require.EqualValues(t, 1, n)

	require.NoError(t, jobs.CancelPendingPurge(gdb, 1, 42))
	require.NoError(t, gdb.Model(&jobs.Job{}).Where("status = ?", jobs.StatusPending).Count(&n).Error)
	require.Zero(t, n)
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	gdb := newTestDB(t)
	w := newWorker(gdb)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancel")
	}
}
