package user

import (
	"context"
	"fmt"
	"log"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/spf13/cobra"
)

// RateCmd returns the user rate subcommand
func RateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a freelancer from 1 to 5",
		Long: `Attach a 1..5 rating to a freelancer.

Examples:
  khedma user rate --id=1 --rating=4
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runRate))),
	}

	cmd.Flags().Int("id", 0, "Freelancer user ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("rating", "", "Rating 1-5 (required)")
	if err := cmd.MarkFlagRequired("rating"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	return cmd
}

func runRate(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	id, err := parser.ParseID("id")
	if err != nil {
		return nil, err
	}
	rating, err := parser.ParseRating("rating")
	if err != nil {
		return nil, err
	}

	if err := args.CLI.Client.RateFreelancer(ctx, id, rating); err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("User %d rated %d/5", id, rating), ID: id}, nil
}
