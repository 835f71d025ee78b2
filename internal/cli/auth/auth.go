// Package auth holds the commands that manage the admin session flag
package auth

import (
	"context"
	"fmt"
	"log"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/spf13/cobra"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as admin",
		Long: `Check admin credentials against the backend and set the session flag.

Examples:
  khedma login --email=admin@khedmalink.com --password=secret

  # Keep the flag for this run only
  khedma login --email=admin@khedmalink.com --password=secret --ephemeral
`,
	}

	cmd.Flags().String("email", "", "Admin email (required)")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("password", "", "Admin password (required)")
	if err := cmd.MarkFlagRequired("password"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.RunE = handler.SimpleCommand(handler.HandlerFunc(runLogin))
	return cmd
}

func runLogin(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	email, err := parser.ParseString("email")
	if err != nil {
		return nil, err
	}
	password, err := parser.ParseString("password")
	if err != nil {
		return nil, err
	}

	c := args.CLI
	result, err := c.Client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.Session.SetLoggedIn(ctx, result.Token); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return cli.Message{Text: "Logged in as " + email}, nil
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the admin session flag",
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			if err := args.CLI.Session.Clear(ctx); err != nil {
				return nil, fmt.Errorf("failed to clear session: %w", err)
			}
			return cli.Message{Text: "Logged out"}, nil
		})),
	}
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the admin session flag is set",
		RunE: handler.SimpleCommand(handler.HandlerFunc(func(ctx context.Context, args *handler.Arguments) (any, error) {
			loggedIn, err := args.CLI.Session.IsLoggedIn(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to read session: %w", err)
			}
			return cli.SessionStatus{LoggedIn: loggedIn, APIURL: args.CLI.Client.BaseURL()}, nil
		})),
	}
}
