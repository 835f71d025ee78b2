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

// UpdateCmd returns the user update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change one contact field of an account",
		Long: `Change the email, phone or portfolio link of an account.

By default the change is sent the way the console's edit form sends it
(POST /user/update). --put uses the PUT variant of the endpoint instead.

Examples:
  khedma user update --id=2 --field=phone --value="+216 22 111 111"
  khedma user update --id=1 --field=link --value=https://amal.dev --put
`,
		RunE: handler.SimpleCommand(handler.Authenticated(handler.HandlerFunc(runUpdate))),
	}

	// Required flags
	cmd.Flags().Int("id", 0, "User ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("field", "", "Field to change: email, phone, link (required)")
	if err := cmd.MarkFlagRequired("field"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("value", "", "New value (required)")
	if err := cmd.MarkFlagRequired("value"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("put", false, "Send with PUT instead of POST")

	return cmd
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	id, err := parser.ParseID("id")
	if err != nil {
		return nil, err
	}
	field, err := parser.ParseField("field")
	if err != nil {
		return nil, err
	}
	value, err := parser.ParseString("value")
	if err != nil {
		return nil, err
	}
	if field == models.FieldEmail {
		if err := models.ValidateValue("email", value, "email"); err != nil {
			return nil, fmt.Errorf("%w: %s", cli.ErrValidation, err.Error())
		}
	}

	client := args.CLI.Client
	if args.GetBool("put") {
		err = client.UpdateUser(ctx, id, field, value)
	} else {
		err = client.UpdateUserField(ctx, id, field, value)
	}
	if err != nil {
		return nil, err
	}
	return cli.Message{Text: fmt.Sprintf("User %d %s updated", id, field.Label()), ID: id}, nil
}
