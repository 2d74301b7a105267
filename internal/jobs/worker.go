package jobs

import (
	"context"
	"errors"
	"math"
	"time"

	"linkstash/internal/logger"

	"gorm.io/gorm"
)

type Worker struct {
	ID   string
	Repo *Repo
	DB   *gorm.DB
	Log  logger.Logger
}

// trashedBookmark mirrors the columns the purge handler needs without
// importing the bookmark package (which depends on this one).
type trashedBookmark struct {
	ID        uint64     `gorm:"column:id"`
	UserID    uint64     `gorm:"column:user_id"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`
}

func (trashedBookmark) TableName() string { return "bookmarks" }

func (w *Worker) Run(ctx context.Context, poll time.Duration) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				w.Log.Error("job claim failed", logger.Error(err))
				continue
			}
			if job == nil {
				continue
			}
			w.Handle(job)
		}
	}
}

func (w *Worker) Handle(job *Job) {
	switch job.Type {
	case TypeTrashPurge:
		w.handlePurge(job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

// handlePurge hard-deletes a bookmark whose retention ran out. The row
// is re-read under the owner scope first: a restore since enqueue (or
// a manual purge) makes the job a no-op rather than a data loss.
func (w *Worker) handlePurge(job *Job) {
	var b trashedBookmark
	err := w.DB.
		Where("id = ? AND user_id = ?", job.BookmarkID, job.UserID).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// already purged
			_ = w.Repo.MarkDone(job.ID)
			return
		}
		w.retry(job, "db read error")
		return
	}

	if b.DeletedAt == nil {
		// restored since the job was scheduled
		_ = w.Repo.MarkDone(job.ID)
		return
	}

	res := w.DB.
		Where("id = ? AND user_id = ? AND deleted_at IS NOT NULL", job.BookmarkID, job.UserID).
		Delete(&trashedBookmark{})
	if res.Error != nil {
		w.retry(job, "db delete error")
		return
	}

	w.Log.Info("trash purged",
		logger.Uint64("user_id", job.UserID),
		logger.Uint64("bookmark_id", job.BookmarkID),
	)
	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}
