// Package request holds the freelancer application commands
package request

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/spf13/cobra"
)

// RequestCmd returns the request parent command
func RequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Manage project applications",
	}

	cmd.AddCommand(SendCmd())
	cmd.AddCommand(AcceptCmd())

	return cmd
}

// SendCmd returns the request send subcommand
func SendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Apply a freelancer to a project",
		Long: `Apply a freelancer to a project on their behalf.

Examples:
  khedma request send --project-id=10 --user-id=1
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runSend))),
	}

	cmd.Flags().Int("project-id", 0, "Project ID (required)")
	cmd.Flags().Int("user-id", 0, "Freelancer user ID (required)")
	for _, name := range []string{"project-id", "user-id"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	return cmd
}

func runSend(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	projectID, err := parser.ParseID("project-id")
	if err != nil {
		return nil, err
	}
	userID, err := parser.ParseID("user-id")
	if err != nil {
		return nil, err
	}

	if err := args.CLI.Client.SendApplication(ctx, strconv.Itoa(projectID), strconv.Itoa(userID)); err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("User %d applied to project %d", userID, projectID)}, nil
}

// AcceptCmd returns the request accept subcommand
func AcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept",
		Short: "Accept an application",
		Long: `Accept application --request-id on project --project-id.

Examples:
  khedma request accept --project-id=10 --request-id=3
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runAccept))),
	}

	cmd.Flags().Int("project-id", 0, "Project ID (required)")
	cmd.Flags().Int("request-id", 0, "Request ID (required)")
	for _, name := range []string{"project-id", "request-id"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	return cmd
}

func runAccept(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	projectID, err := parser.ParseID("project-id")
	if err != nil {
		return nil, err
	}
	requestID, err := parser.ParseID("request-id")
	if err != nil {
		return nil, err
	}

	if err := args.CLI.Client.AcceptApplication(ctx, strconv.Itoa(projectID), strconv.Itoa(requestID)); err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("Request %d accepted on project %d", requestID, projectID), ID: requestID}, nil
}
