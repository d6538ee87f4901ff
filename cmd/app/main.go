package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/in/cli"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	loadDotEnv()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv reads .env when present; a missing file is fine.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "orderdesk",
		Short:        "Conversational food ordering with stock checks and driver dispatch",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand(), newChatCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Order from the terminal",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt)
			defer stop()
			return chat(ctx, c)
		},
	}
}

func serve(ctx context.Context) error {
	app, logger, closeStorage, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeStorage()
		_ = logger.Sync()
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	router, err := app.CreateRouter()
	if err != nil {
		return err
	}

	cfg := app.Config()
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("port", cfg.HTTPPort))
		errCh <- router.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return router.Shutdown(shutdownCtx)
}

func chat(ctx context.Context, c *cobra.Command) error {
	app, logger, closeStorage, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeStorage()
		_ = logger.Sync()
	}()

	turn, err := app.CreateProcessTurnCommandHandler()
	if err != nil {
		return err
	}

	return cli.NewChat(
		app.CreateStartSessionCommandHandler(),
		turn,
		app.CreateSetAddressCommandHandler(),
	).Run(ctx, c.InOrStdin(), c.OutOrStdout())
}

func bootstrap(ctx context.Context) (*cmd.CompositionRoot, *zap.Logger, func() error, error) {
	cfg, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	storage, err := cmd.OpenStorage(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("storage ready", zap.String("driver", cfg.StorageDriver))

	app, err := cmd.NewCompositionRoot(cfg, storage.UoWFactory, logger)
	if err != nil {
		_ = storage.Close()
		return nil, nil, nil, err
	}
	return app, logger, storage.Close, nil
}
