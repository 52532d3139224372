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

	"github.com/spf13/cobra"

	"noteful/config"
	deliveryhttp "noteful/internal/delivery/http"
	"noteful/internal/delivery/http/controllers"
	"noteful/internal/delivery/http/middleware"
	"noteful/internal/services"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openBackend(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer store.close()

	if a.cfg.AutoMigrate {
		if err := store.migrate(ctx, false); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler, err := newHandler(a.cfg, a.logger, store)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", srv.Addr, "store", a.cfg.Store, "environment", a.cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newHandler wires services and controllers over store and wraps the router
// in the middleware chain.
func newHandler(cfg *config.Config, logger *slog.Logger, store *backend) (http.Handler, error) {
	tagPolicy, err := services.ParseCascadePolicy(cfg.TagDeletePolicy)
	if err != nil {
		return nil, err
	}
	folderPolicy, err := services.ParseCascadePolicy(cfg.FolderDeletePolicy)
	if err != nil {
		return nil, err
	}
	integrity := services.NewIntegrityCoordinator(store.notes, tagPolicy, folderPolicy, cfg.CascadeAttempts, logger)

	folderService := services.NewFolderService(store.folders, integrity, cfg.RequestTimeout)
	tagService := services.NewTagService(store.tags, integrity, cfg.RequestTimeout)
	noteService := services.NewNoteService(store.notes, store.tags, cfg.RequestTimeout)

	router := deliveryhttp.NewRouter(
		controllers.NewFolderController(logger, folderService),
		controllers.NewTagController(logger, tagService),
		controllers.NewNoteController(logger, noteService),
	)

	return withMiddleware(router, cfg, logger), nil
}

// withMiddleware wraps h so that every request, including one that panics,
// is logged once.
func withMiddleware(h http.Handler, cfg *config.Config, logger *slog.Logger) http.Handler {
	h = middleware.CORS(cfg.CORSAllowedOrigins, h)
	h = middleware.Recover(logger, h)
	return middleware.Logging(logger, h)
}
