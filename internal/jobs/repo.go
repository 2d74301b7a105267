package jobs

import (
	"time"

	"gorm.io/gorm"
)

type Repo struct {
	DB *gorm.DB
}

// EnqueuePurge schedules a hard delete of a trashed bookmark. Call it
// inside the same transaction that sets deleted_at so the sweep and
// the soft delete commit together.
func EnqueuePurge(tx *gorm.DB, userID, bookmarkID uint64, runAt time.Time) error {
	j := Job{
		UserID:     userID,
		Type:       TypeTrashPurge,
		BookmarkID: bookmarkID,
		RunAt:      runAt,
		Status:     StatusPending,
	}
	return tx.Create(&j).Error
}

// CancelPendingPurge drops any not-yet-claimed purge job for the
// bookmark. Restores and manual purges both call this; the worker
// re-checks state anyway, so a racing claim is harmless.
func CancelPendingPurge(tx *gorm.DB, userID, bookmarkID uint64) error {
	return tx.
		Where("user_id = ? AND type = ? AND status = ? AND bookmark_id = ?",
			userID, TypeTrashPurge, StatusPending, bookmarkID).
		Delete(&Job{}).Error
}

// Claim one due job atomically using SKIP LOCKED.
// Works on Postgres.
func (r *Repo) Claim(workerID string) (*Job, error) {
	var job Job
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		// requeue stuck RUNNING jobs
		tx.Exec(`
update jobs
set status='PENDING', locked_by=null, locked_at=null, updated_at=now()
where status='RUNNING' and locked_at is not null and locked_at < now() - interval '5 minutes'
`)

		q := tx.Raw(`
with cte as (
  select id
  from jobs
  where status='PENDING' and run_at <= now()
  order by run_at asc
  for update skip locked
  limit 1
)
update jobs
set status='RUNNING', locked_by=?, locked_at=now(), updated_at=now()
where id in (select id from cte)
returning *;
`, workerID)

		return q.Scan(&job).Error
	})
	if err != nil {
		return nil, err
	}
	if job.ID == 0 {
		return nil, nil
	}
	return &job, nil
}

func (r *Repo) MarkDone(id uint64) error {
	return r.DB.Model(&Job{}).Where("id = ?", id).Updates(map[string]any{
		"status":     StatusDone,
		"updated_at": time.Now(),
	}).Error
}

func (r *Repo) MarkFailed(id uint64, errMsg string) error {
	return r.DB.Model(&Job{}).Where("id = ?", id).Updates(map[string]any{
		"status":     StatusFailed,
		"last_error": errMsg,
		"updated_at": time.Now(),
	}).Error
}

func (r *Repo) RetryLater(id uint64, attempts int, runAt time.Time, errMsg string) error {
	return r.DB.Model(&Job{}).Where("id = ?", id).Updates(map[string]any{
		"status":     StatusPending,
		"attempts":   attempts,
		"run_at":     runAt,
		"locked_by":  nil,
		"locked_at":  nil,
		"last_error": errMsg,
		"updated_at": time.Now(),
	}).Error
}
