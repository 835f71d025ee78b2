// Package cmd wires the khedma command tree
package cmd

import (
	"context"
	"log/slog"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/auth"
	"github.com/khedmalink/khedma/internal/cli/project"
	"github.com/khedmalink/khedma/internal/cli/request"
	"github.com/khedmalink/khedma/internal/cli/setup"
	"github.com/khedmalink/khedma/internal/cli/user"
	"github.com/khedmalink/khedma/internal/launcher"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the khedma command tree. Running it with no subcommand
// starts the console.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "khedma",
		Short: "Khedma - admin console for the Khedmalink marketplace",
		Long: `Khedma is a terminal admin console for the Khedmalink freelancer marketplace.

Run it without arguments to open the console, or use the subcommands to
manage users, projects and applications from scripts.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: openCLI,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeCLI(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := launcher.Launch(cmd.Context(), cli.OptionsFromFlags(cmd)); err != nil {
				return &cli.ExitCodeError{Code: cli.ExitError, Err: err}
			}
			return nil
		},
	}

	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(auth.LoginCmd())
	rootCmd.AddCommand(auth.LogoutCmd())
	rootCmd.AddCommand(auth.StatusCmd())
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(request.RequestCmd())
	rootCmd.AddCommand(setup.ConfigCmd())

	return rootCmd
}

// openCLI puts a CLI in the command context unless one is already there.
// The console builds its own, so the bare root command skips this.
func openCLI(cmd *cobra.Command, args []string) error {
	if !cmd.HasParent() {
		return nil
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := cli.GetCLIFromContext(ctx); err == nil {
		return nil
	}

	c, err := cli.NewCLI(ctx, cli.OptionsFromFlags(cmd))
	if err != nil {
		return &cli.ExitCodeError{Code: cli.ExitError, Err: err}
	}
	cmd.SetContext(cli.WithCLI(ctx, c))
	return nil
}

func closeCLI(cmd *cobra.Command) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil
	}
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
	return nil
}

// Execute runs the command tree
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
