package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"linkstash/internal/auth"
	"linkstash/internal/bookmark"

	"gorm.io/gorm"
)

type StatsHandler struct {
	Svc *bookmark.Service
	DB  *gorm.DB
}

type statsDTO struct {
	bookmark.Stats
	MemberSince string `json:"member_since"`
}

// Stats aggregates the owner's full record set, trashed rows included:
// totals, the 7-day activity histogram and the membership date.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	rows, err := h.Svc.ListAll(r.Context(), uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var u auth.User
	if err := h.DB.Where("id = ?", uid).First(&u).Error; err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	out := statsDTO{
		Stats:       bookmark.ComputeStats(rows, now),
		MemberSince: u.CreatedAt.In(now.Location()).Format("2006-01-02"),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
