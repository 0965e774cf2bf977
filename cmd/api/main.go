package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/twinkal0201/cardio-70-AI/internal/config"
	"github.com/twinkal0201/cardio-70-AI/internal/email"
	"github.com/twinkal0201/cardio-70-AI/internal/handler"
	dashboardHandler "github.com/twinkal0201/cardio-70-AI/internal/handler/dashboard"
	predictHandler "github.com/twinkal0201/cardio-70-AI/internal/handler/predict"
	reportHandler "github.com/twinkal0201/cardio-70-AI/internal/handler/report"
	"github.com/twinkal0201/cardio-70-AI/internal/middleware"
	"github.com/twinkal0201/cardio-70-AI/internal/repository"
	"github.com/twinkal0201/cardio-70-AI/internal/repository/postgres"
	"github.com/twinkal0201/cardio-70-AI/internal/router"
	dashboardService "github.com/twinkal0201/cardio-70-AI/internal/service/dashboard"
	predictionService "github.com/twinkal0201/cardio-70-AI/internal/service/prediction"
	reportService "github.com/twinkal0201/cardio-70-AI/internal/service/report"
	"github.com/twinkal0201/cardio-70-AI/internal/service/session"
	"github.com/twinkal0201/cardio-70-AI/pkg/logger"
	"github.com/twinkal0201/cardio-70-AI/pkg/messaging"
	redisBroker "github.com/twinkal0201/cardio-70-AI/pkg/messaging/redis"
	"github.com/twinkal0201/cardio-70-AI/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	// Optional prediction log database
	var db handler.Pinger
	var logRepo repository.PredictionLogRepository
	if cfg.Database.Enabled {
		sqlDB, err := postgres.NewDB(cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer sqlDB.Close()
		if err := postgres.EnsureSchema(sqlDB); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure database schema")
		}
		db = sqlDB
		logRepo = postgres.NewPredictionLogRepository(sqlDB)
	}

	// Optional event broker
	var broker messaging.Broker
	if cfg.Redis.Enabled {
		broker, err = redisBroker.NewRedisBroker(redisBroker.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   3,
			RetryBackoff: 100 * time.Millisecond,
			PoolSize:     10,
			MinIdleConns: 2,
		}, appLogger.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer broker.Close()
	}

	// Optional report email delivery
	var emailer email.Sender
	if cfg.SMTP.Enabled {
		emailer = email.NewService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.Secrets.SMTPPassword, cfg.SMTP.From)
	}

	m := metrics.New("cardio70", prometheus.DefaultRegisterer)
	sessions := session.NewStore(cfg.SessionTTL(), cfg.SessionCleanup())

	client := predictionService.NewClient(cfg.Model.Endpoint, time.Duration(cfg.Model.TimeoutSeconds)*time.Second)
	predictionSvc := predictionService.NewService(client, sessions, logRepo, broker, m, cfg.Input.Strict)
	reportSvc := reportService.NewService(sessions, emailer, m)
	dashboardSvc := dashboardService.NewService(logRepo)

	r := router.NewRouter(
		predictHandler.NewHandler(predictionSvc),
		reportHandler.NewHandler(reportSvc),
		dashboardHandler.NewHandler(dashboardSvc, sessions),
		handler.NewHandler(predictionSvc, db),
		m,
		prometheus.DefaultGatherer,
		router.Config{
			RateLimit:  cfg.Server.RateLimit,
			RateBurst:  cfg.Server.RateBurst,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to shutdown server gracefully")
	}
	log.Info().Msg("server stopped")
}
