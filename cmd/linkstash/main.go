package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkstash/internal/auth"
	"linkstash/internal/config"
	"linkstash/internal/db"
	httpx "linkstash/internal/http"
	"linkstash/internal/jobs"
	"linkstash/internal/logger"

	"github.com/google/uuid"
)

func main() {
	cfg, _ := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	defer func() { _ = log.Sync() }()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect failed", logger.Error(err))
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal("db migrate failed", logger.Error(err))
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	r := httpx.NewRouter(cfg, gdb, jwtSvc, log)

	// retention sweep worker
	jobsRepo := &jobs.Repo{DB: gdb}
	worker := &jobs.Worker{
		ID:   "purge-" + uuid.NewString()[:8],
		Repo: jobsRepo,
		DB:   gdb,
		Log:  log,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go worker.Run(ctx, cfg.WorkerPollInterval)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("listening", logger.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", logger.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
