package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/archgen-backend/config"
	cronjob "github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/cron"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/diagram/render"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/repository"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/service"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/bootstrap"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceName = "archgen-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	renderer, err := render.New(render.Options{
		Kind:       cfg.Renderer.Kind,
		MermaidBin: cfg.Renderer.MermaidBin,
		URL:        cfg.Renderer.URL,
		Timeout:    cfg.Renderer.Timeout,
		RPS:        cfg.Renderer.RPS,
		Burst:      cfg.Renderer.Burst,
		Cache:      rdb,
		CacheTTL:   cfg.Renderer.CacheTTL,
	})
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	// archive stays an untyped nil interface when no DSN is configured
	var (
		archive   service.Archive
		db        *pgxpool.Pool
		scheduler *cronjob.Scheduler
	)
	if cfg.ArchiveEnabled() {
		pool, repo, err := bootstrap.OpenArchive(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("archive: %v", err)
		}
		defer pool.Close()
		db, archive = pool, repo

		scheduler = cronjob.NewScheduler(repo, cfg.Database.RetentionDays)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("cron: %v", err)
		}
	} else {
		log.Println("DB_DSN not set, archive disabled")
	}

	sessions := repository.NewSessionRepository(rdb, cfg.Redis.SessionTTL)
	svc := service.NewArchitectureService(sessions, renderer, archive)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Redis:       rdb,
		DB:          db,
		Service:     svc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("%s listening on :%s (renderer=%s)", serviceName, cfg.Server.Port, cfg.Renderer.Kind)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
