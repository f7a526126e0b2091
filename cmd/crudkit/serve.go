package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/handler"
	"github.com/deppfellow/go-crudkit/internal/repository"
	"github.com/deppfellow/go-crudkit/internal/router"
	"github.com/deppfellow/go-crudkit/internal/server"
	"github.com/deppfellow/go-crudkit/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	log := a.log

	if a.cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, &log, a.cfg); err != nil {
			a.loggerService.Shutdown()
			return err
		}
	}

	srv, err := server.New(a.cfg, &log, a.loggerService)
	if err != nil {
		a.loggerService.Shutdown()
		return err
	}

	services := service.NewServices(repository.NewRepositories())
	r := router.NewRouter(srv, handler.NewHandlers(srv), services, srv.DB.Pool)
	srv.SetupHTTPServer(r)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	err = waitForStop(ctx, &log, errCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("graceful shutdown failed")
		if err == nil {
			err = shutdownErr
		}
	}

	log.Info().Msg("server exited")
	return err
}

// waitForStop blocks until the server returns or ctx is cancelled, and
// reports the server's error if it stopped on its own.
func waitForStop(ctx context.Context, log *zerolog.Logger, errCh <-chan error) error {
	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		return nil
	}
}
