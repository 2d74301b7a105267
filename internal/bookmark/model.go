package bookmark

import "time"

// Bookmark is one saved link. DeletedAt is the lifecycle marker:
// nil means active, non-nil means trashed at that instant. Purged
// rows are gone from the table entirely.
type Bookmark struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	UserID    uint64     `gorm:"index;not null" json:"user_id"`
	Title     string     `gorm:"type:text;not null" json:"title"`
	URL       string     `gorm:"type:text;not null" json:"url"`
	Pinned    bool       `gorm:"not null;default:false" json:"pinned"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at"`
}
