// Command comments runs the nested comments API and its database tasks.
//
//	comments serve [--migrate]
//	comments migrate
//	comments seed
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/deppfellow/nested-comments/internal/config"
	"github.com/deppfellow/nested-comments/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "comments",
	Short:         "Blog comment backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles what every command loads first.
type app struct {
	cfg           *config.Config
	loggerService *logger.LoggerService
	log           zerolog.Logger
}

func loadApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	return &app{
		cfg:           cfg,
		loggerService: loggerService,
		log:           logger.NewLoggerWithService(cfg.Observability, loggerService),
	}, nil
}

var errNoDatabase = errors.New("storage.driver is memory: no database to work on")

func (a *app) requirePostgres() error {
	if a.cfg.Storage.Driver != config.StorageDriverPostgres {
		return errNoDatabase
	}
	return nil
}
