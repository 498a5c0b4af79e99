package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/medicheck/medicheck/internal/infrastructure/httpapi"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Serves /summarize, /validate, /chat and /health for the browser extension.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides config)")

	return cmd
}

func runServe(ctx context.Context, port int) error {
	return withDeps(ctx, func(deps *Deps) error {
		cfg := deps.Config.Server
		if port > 0 {
			cfg.Port = port
		}

		srv := httpapi.NewServer(deps.ValidateHandler, deps.ChatHandler, cfg, deps.Logger)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("running server: %w", err)
		case <-ctx.Done():
		}

		deps.Logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			deps.Logger.Error("shutdown failed", zap.Error(err))
			return fmt.Errorf("stopping server: %w", err)
		}
		return nil
	})
}
