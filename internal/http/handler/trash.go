package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"linkstash/internal/auth"
	"linkstash/internal/bookmark"
)

type TrashHandler struct {
	Svc           *bookmark.Service
	RetentionDays int
}

type trashDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	DeletedAt time.Time `json:"deleted_at"`
	DaysLeft  int       `json:"days_left"`
}

// List returns the trash view, most recently trashed first, with the
// retention countdown per row.
func (h *TrashHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	rows, err := h.Svc.ListTrash(r.Context(), uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	out := make([]trashDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, trashDTO{
			ID:        b.ID,
			Title:     b.Title,
			URL:       b.URL,
			CreatedAt: b.CreatedAt,
			DeletedAt: *b.DeletedAt,
			DaysLeft:  bookmark.DaysLeft(*b.DeletedAt, now, h.RetentionDays),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// Purge permanently deletes a trashed record. Irreversible; an active
// id is rejected because the lifecycle has no active → purged edge.
func (h *TrashHandler) Purge(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Svc.Purge(r.Context(), uid, id); err != nil {
		switch {
		case errors.Is(err, bookmark.ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, bookmark.ErrNotTrashed):
			http.Error(w, "bookmark is not in trash", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
