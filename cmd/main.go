package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/chess-tournaments/config"
	"github.com/Dosada05/chess-tournaments/db"
	"github.com/Dosada05/chess-tournaments/handlers"
	"github.com/Dosada05/chess-tournaments/models"
	"github.com/Dosada05/chess-tournaments/repositories"
	api "github.com/Dosada05/chess-tournaments/routes"
	"github.com/Dosada05/chess-tournaments/services"
	"github.com/Dosada05/chess-tournaments/storage"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const (
	loadTimeout     = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	// Настройка логгера (уровень уточняется после загрузки конфигурации)
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if l, err := config.ParseLogLevel(cfg.LogLevel); err == nil {
		level.Set(l)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("data_source", cfg.DataSource),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Снимок турниров читается один раз; дальше хранилище неизменно
	loadCtx, cancelLoad := context.WithTimeout(ctx, loadTimeout)
	tournaments, err := loadTournaments(loadCtx, cfg, logger)
	cancelLoad()
	if err != nil {
		logger.Error("failed to load tournaments", slog.Any("error", err))
		os.Exit(1)
	}

	tournamentRepo := repositories.NewStaticTournamentRepository(tournaments)
	tournamentService := services.NewTournamentService(tournamentRepo, logger)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, logger)
	logger.Info("services initialized", slog.Int("tournaments", len(tournaments)))

	router := chi.NewRouter()
	api.SetupRoutes(router, tournamentHandler, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: 10 * time.Second,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			// Если мягкая остановка не удалась, закрываем принудительно
			return errors.Join(fmt.Errorf("graceful shutdown failed: %w", err), server.Close())
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func loadTournaments(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]models.Tournament, error) {
	switch cfg.DataSource {
	case config.SourceBundled:
		return repositories.LoadFromSource(ctx, storage.NewBundledSource(), logger)

	case config.SourceFile:
		return repositories.LoadFromSource(ctx, storage.NewFileSource(cfg.DataFile), logger)

	case config.SourceR2:
		src, err := storage.NewCloudflareR2Source(ctx, storage.CloudflareR2SourceConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			ObjectKey:       cfg.R2ObjectKey,
		})
		if err != nil {
			return nil, err
		}
		return repositories.LoadFromSource(ctx, src, logger)

	case config.SourcePostgres:
		dbConn, err := db.Connect(ctx, cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()
		tournaments, err := repositories.LoadFromPostgres(ctx, dbConn)
		if err != nil {
			return nil, err
		}
		logger.Info("tournaments loaded", slog.String("source", "postgres"), slog.Int("count", len(tournaments)))
		return tournaments, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, cfg.DataSource)
	}
}
