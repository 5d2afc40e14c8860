package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/nested-comments/internal/config"
	"github.com/deppfellow/nested-comments/internal/database"
	"github.com/deppfellow/nested-comments/internal/handler"
	"github.com/deppfellow/nested-comments/internal/middleware"
	"github.com/deppfellow/nested-comments/internal/repository"
	"github.com/deppfellow/nested-comments/internal/repository/memory"
	"github.com/deppfellow/nested-comments/internal/router"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/deppfellow/nested-comments/internal/service"
	"github.com/spf13/cobra"
)

const (
	bootstrapTimeout = 10 * time.Second
	shutdownTimeout  = 30 * time.Second
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply database migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.loggerService.Shutdown()

	log := a.log

	if migrateOnStart && a.cfg.Storage.Driver == config.StorageDriverPostgres {
		if err := database.Migrate(cmd.Context(), &log, database.DSN(a.cfg.Database)); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	srv, err := server.New(a.cfg, &log, a.loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	var repos *repository.Repositories
	if a.cfg.Storage.Driver == config.StorageDriverMemory {
		repos = memory.NewSeeded().Repositories()
	} else {
		repos = repository.NewRepositories(srv)
	}
	services := service.NewServices(srv, repos)

	ctx, cancel := context.WithTimeout(cmd.Context(), bootstrapTimeout)
	currentUserID, err := services.User.ResolveCurrentUser(ctx, a.cfg.Auth.CurrentUserName)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("current user is missing, refusing to serve")
	}

	r := router.NewRouter(srv, handler.NewHandlers(srv, services), middleware.NewMiddlewares(srv, currentUserID))
	srv.SetupHTTPServer(r)

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-stopCtx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
