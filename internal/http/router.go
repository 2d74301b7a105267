package http

import (
	"net/http"
	"time"

	"linkstash/internal/auth"
	"linkstash/internal/bookmark"
	"linkstash/internal/config"
	"linkstash/internal/http/handler"
	mw "linkstash/internal/http/middleware"
	"linkstash/internal/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.Log(log))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	svc := &bookmark.Service{DB: db, Retention: cfg.TrashRetention}
	bh := &handler.BookmarkHandler{Svc: svc}
	th := &handler.TrashHandler{
		Svc:           svc,
		RetentionDays: int(cfg.TrashRetention / (24 * time.Hour)),
	}
	sh := &handler.StatsHandler{Svc: svc, DB: db}

	r.Route("/bookmarks", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", bh.Create)
		r.Get("/", bh.List)

		r.Delete("/{id}", bh.Trash)
		r.Post("/{id}/restore", bh.Restore)
	})

	r.Route("/trash", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", th.List)
		r.Delete("/{id}", th.Purge)
	})

	r.With(auth.RequireAuth(jwtSvc)).Get("/stats", sh.Stats)

	return r
}
