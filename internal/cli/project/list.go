package project

import (
	"context"
	"log"

	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/khedmalink/khedma/internal/filter"
	"github.com/spf13/cobra"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long: `List every project, optionally narrowed by a search term matched
against title and description, ignoring case.

Examples:
  khedma project list
  khedma project list --search=react --json
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runList))),
	}

	cmd.Flags().String("search", "", "Case-insensitive title or description search")

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	projects, err := args.CLI.Client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Projects(projects, args.GetString("search", "")), nil
}

// MineCmd returns the subcommand listing one user's projects
func MineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List the projects of one user",
		Long: `List the projects owned by, or assigned to, a user.

Examples:
  khedma project mine --user-id=2
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runMine))),
	}

	cmd.Flags().Int("user-id", 0, "User ID (required)")
	if err := cmd.MarkFlagRequired("user-id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runMine(ctx context.Context, args *handler.Arguments) (any, error) {
	userID, err := handler.NewFlagParser(args.GetCmd()).ParseID("user-id")
	if err != nil {
		return nil, err
	}
	return args.CLI.Client.UserProjects(ctx, userID)
}

// RequestsCmd returns the subcommand listing applications to a project
func RequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List the applications made to a project",
		Long: `List freelancer applications for a project.

Examples:
  khedma project requests --id=10
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runRequests))),
	}

	cmd.Flags().Int("id", 0, "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runRequests(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseID("id")
	if err != nil {
		return nil, err
	}
	return args.CLI.Client.ProjectRequests(ctx, id)
}
