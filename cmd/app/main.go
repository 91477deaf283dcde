package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"beveragebuddy/internal/config"
	"beveragebuddy/internal/infra"
	"beveragebuddy/internal/seed"
	"beveragebuddy/pkg/logutils"
)

var version = "dev"

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := config.Default()
	app := newCommand(cfg, serve)

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("beveragebuddy failed")
	}
}

// serveFunc runs the web server until it is told to stop.
type serveFunc func(ctx context.Context, cfg *config.Config) error

// newCommand builds the CLI. Both the bare command and `serve` start the
// server through run.
func newCommand(cfg *config.Config, run serveFunc) *cli.Command {
	return &cli.Command{
		Name:    "beveragebuddy",
		Usage:   "Keep track of the beverages you have tasted",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "env",
				Usage:       "runtime environment (development, production)",
				Sources:     cli.EnvVars("APP_ENV"),
				Value:       cfg.Env,
				Destination: &cfg.Env,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Value:       cfg.LogLevel,
				Destination: &cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:        "db-driver",
				Usage:       "database driver (sqlite, postgres)",
				Sources:     cli.EnvVars("DB_DRIVER"),
				Value:       cfg.DBDriver,
				Destination: &cfg.DBDriver,
			},
			&cli.StringFlag{
				Name:        "postgres-url",
				Usage:       "postgres connection string",
				Sources:     cli.EnvVars("POSTGRES_URL"),
				Destination: &cfg.PostgresURL,
			},
			&cli.StringFlag{
				Name:        "sqlite-path",
				Usage:       "path to the sqlite database file",
				Sources:     cli.EnvVars("SQLITE_PATH"),
				Value:       cfg.SQLitePath,
				Destination: &cfg.SQLitePath,
			},
			&cli.StringFlag{
				Name:        "port",
				Usage:       "HTTP listen port",
				Sources:     cli.EnvVars("PORT"),
				Value:       cfg.Port,
				Destination: &cfg.Port,
			},
			&cli.StringFlag{
				Name:        "toast-secret",
				Usage:       "HMAC secret signing the notification cookie",
				Sources:     cli.EnvVars("TOAST_SECRET"),
				Destination: &cfg.ToastSecret,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := logutils.New(cfg.LogLevel, cfg.IsDevelopment(), os.Stdout)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the web server",
				Action: func(ctx context.Context, c *cli.Command) error {
					return run(ctx, cfg)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the database schema",
				Action: func(ctx context.Context, c *cli.Command) error {
					return migrate(cfg)
				},
			},
			{
				Name:  "seed",
				Usage: "load demo categories and reviews into an empty database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "YAML fixtures file (defaults to the built-in set)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return seedDatabase(ctx, cfg, c.String("file"))
				},
			},
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if err := prepareServe(cfg); err != nil {
		return err
	}

	app := newServer(cfg)
	if err := app.Start(ctx); err != nil {
		return err
	}

	<-app.Wait()
	log.Info().Msg("shutting down")

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

// prepareServe fills in a throwaway toast secret during development and
// validates the server settings.
func prepareServe(cfg *config.Config) error {
	if cfg.ToastSecret == "" && cfg.IsDevelopment() {
		cfg.ToastSecret = uuid.NewString()
		log.Warn().Msg("TOAST_SECRET not set, using a random secret for this run")
	}
	return cfg.Validate()
}

func migrate(cfg *config.Config) error {
	if err := cfg.ValidateDatabase(); err != nil {
		return err
	}

	db, err := infra.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db)

	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info().Msg("schema up to date")
	return nil
}

func seedDatabase(ctx context.Context, cfg *config.Config, path string) error {
	if err := cfg.ValidateDatabase(); err != nil {
		return err
	}

	fixtures, err := seed.LoadFixtures(path)
	if err != nil {
		return err
	}

	db, err := infra.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db)

	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	res, err := seed.Apply(ctx, db, fixtures, time.Now())
	if err != nil {
		return err
	}
	if !res.Skipped {
		fmt.Printf("seeded %d categories and %d reviews\n", res.Categories, res.Reviews)
	}
	return nil
}
