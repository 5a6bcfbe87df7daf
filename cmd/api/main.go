package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	"github.com/BruksfildServices01/trainer-marketplace/internal/auth"
	"github.com/BruksfildServices01/trainer-marketplace/internal/cache"
	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/trainer-marketplace/internal/db"
	infraRepo "github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/jobs"
	"github.com/BruksfildServices01/trainer-marketplace/internal/mailer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/payments"
	"github.com/BruksfildServices01/trainer-marketplace/internal/routes"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
	"github.com/BruksfildServices01/trainer-marketplace/internal/timezone"
	"github.com/BruksfildServices01/trainer-marketplace/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg := config.Load()

	if !timezone.Set(cfg.Timezone) {
		log.Printf("invalid TIMEZONE=%q, using %s", cfg.Timezone, timezone.Name())
	}
	if err := validators.RegisterBindings(); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg)

	// ======================================================
	// INFRA
	// ======================================================
	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	redisCache, err := cache.New(ctx, cfg)
	if err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
		redisCache = nil
	}
	defer redisCache.Close()

	var gateway payments.Gateway
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPago(payments.MercadoPagoOptions{
			AccessToken:     cfg.MPAccessToken,
			Currency:        cfg.MPCurrency,
			NotificationURL: cfg.MPNotificationURL,
			ClientURL:       cfg.ClientURL,
		})
		if err != nil {
			log.Fatalf("failed to init mercadopago: %v", err)
		}
		gateway = mp
	} else {
		log.Println("MP_ACCESS_TOKEN not set, payments disabled")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	// ======================================================
	// JOBS
	// ======================================================
	sweeper := jobs.NewResetSweeper(infraRepo.NewUserGormRepository(db))
	scheduler, err := jobs.NewScheduler(cfg.CleanupCron, timezone.Location(), sweeper)
	if err != nil {
		log.Fatalf("invalid CLEANUP_CRON=%q: %v", cfg.CleanupCron, err)
	}
	scheduler.Start()

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Tokens:  auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL),
		Store:   store,
		Cache:   redisCache,
		Mailer:  mailer.New(cfg),
		Gateway: gateway,
		Audit:   auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	scheduler.Stop(shutdownCtx)
}
