package user

import (
	"context"
	"fmt"
	"log"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/spf13/cobra"
)

// DeleteCmd returns the user delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an account",
		Long: `Delete an account by ID (requires confirmation unless --force, --json or --quiet).

Examples:
  # Delete with confirmation
  khedma user delete --id=4

  # Skip confirmation
  khedma user delete --id=4 --force
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runDelete))),
	}

	// Required flags
	cmd.Flags().Int("id", 0, "User ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	cmd := args.GetCmd()
	parser := handler.NewFlagParser(cmd)
	id, err := parser.ParseID("id")
	if err != nil {
		return nil, err
	}
	jsonOutput, quietMode, err := parser.OutputFormats()
	if err != nil {
		return nil, err
	}

	client := args.CLI.Client

	// Ask for confirmation unless force or a machine-readable mode
	if !args.GetBool("force") && !jsonOutput && !quietMode {
		users, err := client.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		label := ""
		for _, u := range users {
			if u.ID == id {
				label = u.FullName()
				break
			}
		}
		if label == "" {
			return nil, fmt.Errorf("%w: user %d", cli.ErrNotFound, id)
		}
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete user '%s'?", label)) {
			return cli.Message{Text: "Cancelled"}, nil
		}
	}

	if err := client.DeleteUser(ctx, id); err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("User %d deleted", id), ID: id}, nil
}
