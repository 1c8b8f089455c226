package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprm/forum-comments/internal/config"
	"github.com/dimasprm/forum-comments/internal/db"
	handler "github.com/dimasprm/forum-comments/internal/handler/http"
	"github.com/dimasprm/forum-comments/internal/handler/middleware"
	"github.com/dimasprm/forum-comments/internal/idgen"
	"github.com/dimasprm/forum-comments/internal/repository/postgres"
	"github.com/dimasprm/forum-comments/internal/usecase"
)

// splitAndTrim splits s by sep and trims results.
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func connectDB(cfg *config.Config) (*dbpg.DB, error) {
	slaves := []string{}
	if strings.TrimSpace(cfg.Database.Slaves) != "" {
		slaves = splitAndTrim(cfg.Database.Slaves, ",")
	}
	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetimeSec) * time.Second,
	}

	var (
		database *dbpg.DB
		err      error
	)
	for i := 0; i < cfg.Database.ConnectRetries; i++ {
		database, err = dbpg.New(cfg.Database.DSN, slaves, opts)
		if err == nil {
			if pingErr := database.Master.Ping(); pingErr == nil {
				return database, nil
			} else {
				zlog.Logger.Warn().Err(pingErr).Msg("db ping failed")
				err = pingErr
			}
		}
		zlog.Logger.Warn().Err(err).Msgf("waiting for database (attempt %d/%d)", i+1, cfg.Database.ConnectRetries)
		time.Sleep(time.Duration(cfg.Database.ConnectRetryDelaySec) * time.Second)
	}
	return nil, err
}

func main() {
	zlog.Init()
	zlog.Logger.Info().Msg("zlog initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := "config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "/app/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load config")
	}

	database, err := connectDB(cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database after retries")
	}

	if err := db.RunMigrations(database, cfg.Migrations.Path); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("migrations failed")
	}

	comments := postgres.NewCommentRepository(database, idgen.Default)
	threads := postgres.NewThreadRepository(database)
	service := usecase.NewCommentUsecase(comments, threads)

	engine := ginext.New(cfg.Server.Mode)
	engine.Use(middleware.LoggerMiddleware())
	handler.NewCommentHandler(service).RegisterRoutes(engine)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.Addr).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Logger.Fatal().Err(err).Msg("failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("server shutdown failed")
	}

	if err := database.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close database connection")
	}
	zlog.Logger.Info().Msg("exiting")
}
