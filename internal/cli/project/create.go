package project

import (
	"context"
	"fmt"
	"log"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/spf13/cobra"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project for a recruiter",
		Long: `Create a project owned by the recruiter with --owner-id.
Skills are comma separated; blank entries are dropped.

Examples:
  khedma project create --title="Build a React Website" \
    --description="Landing page and dashboard" --price=25 \
    --skills="React, CSS" --owner-id=2
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runCreate))),
	}

	// Required flags
	cmd.Flags().String("title", "", "Project title (required)")
	cmd.Flags().String("description", "", "Project description (required)")
	cmd.Flags().String("price", "", "Price per hour (required)")
	cmd.Flags().Int("owner-id", 0, "Recruiter user ID (required)")
	for _, name := range []string{"title", "description", "price", "owner-id"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().String("skills", "", "Comma separated skills")

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	ownerID, err := handler.NewFlagParser(args.GetCmd()).ParseID("owner-id")
	if err != nil {
		return nil, err
	}

	payload := models.NewProject{
		Title:        args.GetString("title", ""),
		Description:  args.GetString("description", ""),
		PricePerHour: args.GetString("price", ""),
		Skills:       models.ParseSkills(args.GetString("skills", "")),
		OwnerID:      ownerID,
	}
	if err := cli.ValidatePayload(payload); err != nil {
		return nil, err
	}

	if err := args.CLI.Client.CreateProject(ctx, payload); err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("Project '%s' created", payload.Title)}, nil
}
