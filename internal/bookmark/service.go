package bookmark

import (
	"context"
	"errors"
	"strings"
	"time"

	"linkstash/internal/jobs"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrMissingFields = errors.New("both title and url are required")
	ErrNotTrashed    = errors.New("not trashed")
)

type Service struct {
	DB *gorm.DB

	// Retention is how long a trashed bookmark survives before the
	// scheduled purge removes it.
	Retention time.Duration
}

type CreateInput struct {
	Title string
	URL   string
}

// Create validates and normalizes the input, then inserts an active
// record owned by userID. The returned domain is a display preview;
// an unparseable host yields "" without failing the insert.
func (s *Service) Create(ctx context.Context, userID uint64, in CreateInput) (Bookmark, string, error) {
	title := strings.TrimSpace(in.Title)
	rawURL := strings.TrimSpace(in.URL)
	if title == "" || rawURL == "" {
		return Bookmark{}, "", ErrMissingFields
	}

	normalized := NormalizeURL(rawURL)
	domain := DeriveDomain(normalized)

	b := Bookmark{
		UserID: userID,
		Title:  title,
		URL:    normalized,
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return Bookmark{}, "", err
	}
	return b, domain, nil
}

// ListActive returns the owner's active records, most recent first.
func (s *Service) ListActive(ctx context.Context, userID uint64) ([]Bookmark, error) {
	var rows []Bookmark
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at desc").
		Find(&rows).Error
	return rows, err
}

// ListTrash returns the owner's trashed records, most recently
// trashed first.
func (s *Service) ListTrash(ctx context.Context, userID uint64) ([]Bookmark, error) {
	var rows []Bookmark
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NOT NULL", userID).
		Order("deleted_at desc").
		Find(&rows).Error
	return rows, err
}

// ListAll returns every record the owner has, active and trashed.
// Stats are computed over this set.
func (s *Service) ListAll(ctx context.Context, userID uint64) ([]Bookmark, error) {
	var rows []Bookmark
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}

// Trash soft-deletes an active record and schedules its purge at
// deleted_at + retention. Only the active → trashed transition exists;
// an already-trashed id reports ErrNotFound.
func (s *Service) Trash(ctx context.Context, userID, id uint64) error {
	now := time.Now()
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Bookmark{}).
			Where("id = ? AND user_id = ? AND deleted_at IS NULL", id, userID).
			Update("deleted_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return jobs.EnqueuePurge(tx, userID, id, now.Add(s.Retention))
	})
}

// Restore clears deleted_at and cancels the pending purge, making the
// record indistinguishable from its pre-trash state.
func (s *Service) Restore(ctx context.Context, userID, id uint64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Bookmark{}).
			Where("id = ? AND user_id = ? AND deleted_at IS NOT NULL", id, userID).
			Update("deleted_at", nil)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return jobs.CancelPendingPurge(tx, userID, id)
	})
}

// Purge permanently removes a trashed record. Purging an active record
// is rejected with ErrNotTrashed: the only path out of the active
// state goes through the trash.
func (s *Service) Purge(ctx context.Context, userID, id uint64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b Bookmark
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if b.DeletedAt == nil {
			return ErrNotTrashed
		}
		if err := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&Bookmark{}).Error; err != nil {
			return err
		}
		return jobs.CancelPendingPurge(tx, userID, id)
	})
}
