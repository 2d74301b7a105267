package db

import (
	"fmt"

	"linkstash/internal/auth"
	"linkstash/internal/bookmark"
	"linkstash/internal/jobs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.User{},
		&bookmark.Bookmark{},
		&jobs.Job{},
	); err != nil {
		return err
	}

	// The two list views are strict partitions of an owner's rows, so
	// each gets its own partial index matching its order.
	stmts := []string{
		`create index if not exists idx_bookmarks_user_active on bookmarks(user_id, created_at desc) where deleted_at is null;`,
		`create index if not exists idx_bookmarks_user_trash on bookmarks(user_id, deleted_at desc) where deleted_at is not null;`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
		`create index if not exists idx_jobs_bookmark on jobs(user_id, type, status, bookmark_id);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
