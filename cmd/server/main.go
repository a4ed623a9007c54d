package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/adapters/primary/http/handlers"
	"churn-prediction-service/internal/adapters/primary/http/middleware"
	"churn-prediction-service/internal/adapters/secondary/fsstore"
	"churn-prediction-service/internal/adapters/secondary/htmlreport"
	"churn-prediction-service/internal/adapters/secondary/postgres"
	smtpadapter "churn-prediction-service/internal/adapters/secondary/smtp"
	"churn-prediction-service/internal/config"
	ports "churn-prediction-service/internal/core/ports/output"
	"churn-prediction-service/internal/core/services"
)

func main() {
	// .env carries SMTP credentials in local setups; absence is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx := context.Background()

	// Run history (optional - based on config)
	var runRepo ports.ScoringRunRepository
	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		pool, err = connectDatabase(ctx, cfg)
		if err != nil {
			log.Warnf("database init failed (continuing without run history): %v", err)
		} else {
			defer pool.Close()
			runRepo = postgres.NewScoringRunRepository(pool)
			log.Info("scoring run history enabled")
		}
	} else {
		log.Info("run history disabled")
	}

	// Secondary adapters
	artifacts := fsstore.NewArtifactStore(cfg.Paths.ModelPath, cfg.Paths.ThresholdPath)
	baselines := fsstore.NewBaselineStore(cfg.Paths.BaselinePath)
	reports := fsstore.NewReportStore(cfg.Paths.ReportPath)
	renderer, err := htmlreport.NewRenderer()
	if err != nil {
		log.Fatalf("init report renderer: %v", err)
	}
	mailer := smtpadapter.NewMailer(cfg.Email.SMTPServer, cfg.Email.SMTPPort, cfg.Email.Username, cfg.Email.Password)

	// Core services
	predictionSvc, err := services.NewPredictionService(ctx, artifacts, runRepo)
	if err != nil {
		log.Fatalf("load model artifact: %v", err)
	}
	log.Infof("model artifact loaded (threshold=%.2f)", predictionSvc.Threshold())

	monitoringSvc := services.NewMonitoringService()
	recommendationSvc := services.NewRecommendationService(baselines, renderer, reports, monitoringSvc)
	emailSvc := services.NewEmailService(mailer, reports, services.EmailOptions{
		CredentialsConfigured: cfg.Email.CredentialsConfigured(),
		ReportURL:             cfg.Email.ReportURL,
	})

	// Primary adapter
	h := handlers.New(predictionSvc, recommendationSvc, emailSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.Use(cors.Default())
	h.RegisterRoutes(router)

	// Static frontend; the generated report is written into this directory
	// and served alongside it.
	router.Static("/ui", cfg.Paths.WebDir)

	router.GET("/healthz", func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func connectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
