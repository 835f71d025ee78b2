// Package setup holds the commands that manage the local config file
package setup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/khedmalink/khedma/internal/config"
	"github.com/spf13/cobra"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the khedma config file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to the config file",
		Long: `Write the effective configuration (file values, KHEDMA_* environment
overrides and --api-url) to the config file.

Examples:
  # Start from the defaults
  khedma config init

  # Point the console at a staging backend from now on
  khedma config init --api-url=https://staging.khedmalink.com --force
`,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	cmd.RunE = handler.SimpleCommand(handler.HandlerFunc(runInit))
	return cmd
}

func runInit(ctx context.Context, args *handler.Arguments) (any, error) {
	path, err := config.Path()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config file: %w", err)
	}

	if !args.GetBool("force") {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			return nil, cli.Usagef("config file already exists at %s (use --force to overwrite)", path)
		case !errors.Is(statErr, os.ErrNotExist):
			return nil, statErr
		}
	}

	if err := args.CLI.Config.Save(); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}
	return cli.Message{Text: "Wrote " + path}, nil
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			path, err := config.Path()
			if err != nil {
				return nil, fmt.Errorf("failed to locate config file: %w", err)
			}
			return cli.Message{Text: path}, nil
		})),
	}
}
