package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/tarfakademi/portal/config"
	"github.com/tarfakademi/portal/internal/admin"
	"github.com/tarfakademi/portal/internal/cache"
	"github.com/tarfakademi/portal/internal/db"
	"github.com/tarfakademi/portal/internal/portal"
	"github.com/tarfakademi/portal/internal/rest"
)

type App struct {
	Repo   *db.Repository
	Cache  cache.Cache
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	repo := db.New(dbConnect)

	c, err := newCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	loc := time.UTC
	if cfg.App.Timezone != "" {
		loc, err = time.LoadLocation(cfg.App.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", cfg.App.Timezone, err)
		}
	}

	handler := rest.NewHandler(
		portal.NewManager(repo, c, logger, loc),
		logger,
	)
	adminHandler := rest.NewAdminHandler(
		admin.NewManager(repo, c, logger),
		logger,
	)

	return &App{
		Repo:   repo,
		Cache:  c,
		Logger: logger,
		Echo:   rest.NewEcho(handler, adminHandler, cfg.App.AdminToken, logger),
		Config: cfg,
	}, nil
}

func newCache(cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "", "memory":
		return cache.NewMemory(), nil
	case "redis":
		return cache.NewRedis(cfg.Cache.RedisURL)
	}
	return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if closeErr := a.Cache.Close(); closeErr != nil {
		a.Logger.Error("cache close failed", "error", closeErr)
	}
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
