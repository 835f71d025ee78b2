package project

import (
	"context"
	"fmt"
	"log"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/spf13/cobra"
)

// StatusCmd returns the project status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Change the status of a project",
		Long: `Set a project's status. The update endpoint accepts pending, active
and finished; the listing statuses open and closed are rejected.

Examples:
  khedma project status --id=10 --status=active
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runStatus))),
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("status", "", "New status: pending, active, finished (required)")
	if err := cmd.MarkFlagRequired("status"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runStatus(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	id, err := parser.ParseID("id")
	if err != nil {
		return nil, err
	}
	status, err := parser.ParseStatus("status")
	if err != nil {
		return nil, err
	}

	if err := args.CLI.Client.UpdateProjectStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("Project %d is now %s", id, status), ID: id}, nil
}
