// Package main serves the wellness chatbot over HTTP.
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

	"github.com/minhyannv/medchat-go/pkg/chatbot"
	configpkg "github.com/minhyannv/medchat-go/pkg/config"
	loggerpkg "github.com/minhyannv/medchat-go/pkg/logger"
	"github.com/minhyannv/medchat-go/pkg/server"
)

const shutdownTimeout = 10 * time.Second

// main is the program entry point.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "medchat-server",
		Short:         "Serve the wellness chatbot on POST " + server.ChatbotPath,
		Long:          "Serve the wellness chatbot over HTTP. Listens on HOST:PORT (default 0.0.0.0:4000).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler, appLogger, err := newHandler(cmd)
			if err != nil {
				return err
			}
			return serve(ctx, configpkg.LoadServer().Addr(), handler, appLogger)
		},
	}
}

// newHandler builds the chatbot routes. A missing credential is not fatal here;
// requests are answered with 500 until the server is restarted with a key.
func newHandler(cmd *cobra.Command) (http.Handler, loggerpkg.Logger, error) {
	cfg, err := configpkg.Load()
	if err != nil && !errors.Is(err, configpkg.ErrMissingAPIKey) {
		return nil, nil, err
	}

	appLogger := loggerpkg.NewWriterLogger(cmd.ErrOrStderr(), cfg.Verbose)
	var bot server.Exchanger
	if err != nil {
		loggerpkg.Warn(appLogger, "chatbot disabled", map[string]any{"error": err.Error()})
	} else {
		b, err := chatbot.New(cfg, chatbot.WithLogger(appLogger))
		if err != nil {
			return nil, nil, err
		}
		bot = b
	}
	return server.New(bot, appLogger).Routes(), appLogger, nil
}

func serve(ctx context.Context, addr string, handler http.Handler, appLogger loggerpkg.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		loggerpkg.Info(appLogger, "medchat server listening", map[string]any{"addr": addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	loggerpkg.Info(appLogger, "medchat server stopped", nil)
	return nil
}
