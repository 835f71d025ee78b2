package user

import (
	"context"
	"fmt"
	"log"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/spf13/cobra"
)

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Long: `Create an account.

Examples:
  khedma user create --first-name=Amal --last-name="Ben Salah" \
    --email=amal@khedmalink.com --password=secret

  # Recruiter with contact details, JSON output for agents
  khedma user create --first-name=Karim --last-name=Trabelsi \
    --email=karim@corp.tn --password=secret --role=recruiter \
    --phone="+216 20 000 000" --json
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runCreate))),
	}

	// Required flags
	for _, name := range []string{"first-name", "last-name", "email", "password"} {
		cmd.Flags().String(name, "", fmt.Sprintf("Account %s (required)", name))
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().String("role", string(models.RoleFreelancer), "Role: freelancer, recruiter, admin, validator")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("link", "", "Portfolio link")

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	role, err := parser.ParseRole("role")
	if err != nil {
		return nil, err
	}

	payload := models.NewUser{
		FirstName: args.GetString("first-name", ""),
		LastName:  args.GetString("last-name", ""),
		Email:     args.GetString("email", ""),
		Password:  args.GetString("password", ""),
		Phone:     args.GetString("phone", ""),
		Link:      args.GetString("link", ""),
		Role:      role,
	}
	if err := cli.ValidatePayload(payload); err != nil {
		return nil, err
	}

	if err := args.CLI.Client.CreateUser(ctx, payload); err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("User '%s %s' created", payload.FirstName, payload.LastName)}, nil
}
