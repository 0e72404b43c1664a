package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/config"
	"github.com/erickbalderas17/rastro-pollos/internal/infra"
	"github.com/erickbalderas17/rastro-pollos/internal/router"
	"github.com/erickbalderas17/rastro-pollos/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:generate swag init -g cmd/server/main.go -o docs --dir ../../

// @title                      Rastro San Pablito API
// @version                    1.0
// @description                Boletas de pesaje, cobro, devoluciones y cuentas de clientes.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to open database")
	}
	if err := infra.SeedUsuarios(db, cfg.CajaPassword, cfg.BasculaPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed users")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	if rdb == nil {
		log.Warn().Msg("REDIS_URL vacio: sin cache de precios ni envio de correos")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Email workers run only when there is a queue to consume.
	mailerCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	if rdb != nil && cfg.SMTPHost != "" {
		pool := worker.NewPool(rdb)
		pool.Register(worker.QueueEmail, worker.JobEmail, worker.NewEmailWorker(infra.NewMailer(cfg), mailerCB))
		pool.Start(ctx, cfg.WorkerPoolSize)
	}

	r := router.New(cfg, db, rdb, mailerCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("db", cfg.DBDriver).Msgf("rastro listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server exited")
}

// setupLogger: dev → pretty console, prod → JSON.
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
