// Package main provides the medchat interactive CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhyannv/medchat-go/pkg/chatbot"
	configpkg "github.com/minhyannv/medchat-go/pkg/config"
	loggerpkg "github.com/minhyannv/medchat-go/pkg/logger"
)

// main is the program entry point.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "medchat",
		Short:         "Interactive wellness chatbot backed by OpenRouter",
		Long:          "Chat with a general wellness assistant. Requires " + configpkg.APIKeyEnv + " to be set. Type 'exit' to quit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configpkg.Load()
			if err != nil {
				return err
			}

			appLogger := loggerpkg.NewWriterLogger(cmd.ErrOrStderr(), cfg.Verbose)
			bot, err := chatbot.New(cfg, chatbot.WithLogger(appLogger))
			if err != nil {
				return err
			}

			return runREPL(cmd.Context(), bot, replOptions{Logger: appLogger}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
