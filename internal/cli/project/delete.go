package project

import (
	"context"
	"fmt"
	"log"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/spf13/cobra"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		Long: `Delete a project by ID (requires confirmation unless --force, --json or --quiet).

Examples:
  khedma project delete --id=10
  khedma project delete --id=10 --force
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runDelete))),
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
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

	if !args.GetBool("force") && !jsonOutput && !quietMode {
		projects, err := client.ListProjects(ctx)
		if err != nil {
			return nil, err
		}
		title := ""
		for _, p := range projects {
			if p.ID == id {
				title = p.Title
				break
			}
		}
		if title == "" {
			return nil, fmt.Errorf("%w: project %d", cli.ErrNotFound, id)
		}
		if !cli.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete project '%s'?", title)) {
			return cli.Message{Text: "Cancelled"}, nil
		}
	}

	if err := client.DeleteProject(ctx, id); err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("Project %d deleted", id), ID: id}, nil
}
