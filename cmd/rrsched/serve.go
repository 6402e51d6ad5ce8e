package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/logging"
	"github.com/derekprior/rrsched/internal/metrics"
	"github.com/derekprior/rrsched/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(global *globalOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the schedule API over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := storeConfig(global)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if global.logLevel == "" && cfg.Logging.Level == config.Default().Logging.Level {
				// Requests are logged at info.
				cfg.Logging.Level = "info"
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.addr from config)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	st, err := openStore(ctx, cfg.Store.Path, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(st, metrics.NewManager(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr, "db", cfg.Store.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
