package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MassBabyGeek/TrilhaVital-backend/internal/api"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/database"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/handler"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/logger"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/middleware"
	"github.com/MassBabyGeek/TrilhaVital-backend/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close database: %v", err)
		}
	}()

	if cfg.SeedOnStart {
		if _, err := database.Seed(ctx, store); err != nil {
			return err
		}
	}

	pages, err := web.NewRenderer()
	if err != nil {
		return err
	}

	router := api.SetupRouter(cfg, handler.New(store, pages), middleware.NewMetrics())
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Success("Server starting on port %s (%s)", cfg.Port, cfg.DBDriver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
