package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"linkstash/internal/auth"
	"linkstash/internal/bookmark"

	"github.com/go-chi/chi/v5"
)

type BookmarkHandler struct {
	Svc *bookmark.Service
}

type createBookmarkReq struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type bookmarkDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createBookmarkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	b, domain, err := h.Svc.Create(r.Context(), uid, bookmark.CreateInput{
		Title: req.Title,
		URL:   req.URL,
	})
	if err != nil {
		if errors.Is(err, bookmark.ErrMissingFields) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":     b.ID,
		"url":    b.URL,
		"domain": domain,
	})
}

// List returns the active view: owner's live records, newest first,
// narrowed by the optional q and range parameters. An empty result is
// a valid outcome, not an error.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	q := r.URL.Query().Get("q")
	rng := bookmark.DateRange(r.URL.Query().Get("range"))

	rows, err := h.Svc.ListActive(r.Context(), uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filtered := bookmark.Filter(rows, q, rng, time.Now())

	out := make([]bookmarkDTO, 0, len(filtered))
	for _, b := range filtered {
		out = append(out, bookmarkDTO{
			ID:        b.ID,
			Title:     b.Title,
			URL:       b.URL,
			Pinned:    b.Pinned,
			CreatedAt: b.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (h *BookmarkHandler) Trash(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Svc.Trash(r.Context(), uid, id); err != nil {
		if errors.Is(err, bookmark.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BookmarkHandler) Restore(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.Svc.Restore(r.Context(), uid, id); err != nil {
		if errors.Is(err, bookmark.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
}
