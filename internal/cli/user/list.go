package user

import (
	"context"
	"strings"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/cli/handler"
	"github.com/khedmalink/khedma/internal/filter"
	"github.com/spf13/cobra"
)

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long: `List every account, optionally narrowed by role and a search term.
The search matches "first last" name or email, ignoring case.

Examples:
  khedma user list
  khedma user list --role=freelancer --search=khedmalink
  khedma user list --quiet
`,
		RunE: handler.Command(handler.Authenticated(handler.HandlerFunc(runList)), validateListFlags),
	}

	cmd.Flags().String("role", string(filter.RoleAll), "Role filter: all, freelancer, recruiter, admin, validator")
	cmd.Flags().String("search", "", "Case-insensitive name or email search")

	return cmd
}

func validateListFlags(cmd *cobra.Command) error {
	_, err := parseRoleFilter(cmd)
	return err
}

// parseRoleFilter accepts "all" on top of the account roles
func parseRoleFilter(cmd *cobra.Command) (filter.RoleFilter, error) {
	value, err := handler.NewFlagParser(cmd).ParseStringOptional("role")
	if err != nil {
		return "", err
	}
	if value == "" || strings.EqualFold(value, string(filter.RoleAll)) {
		return filter.RoleAll, nil
	}
	role, err := cli.ParseRole(value)
	if err != nil {
		return "", err
	}
	return filter.RoleFilter(role), nil
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	role, err := parseRoleFilter(args.GetCmd())
	if err != nil {
		return nil, err
	}
	search := args.GetString("search", "")

	users, err := args.CLI.Client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Users(users, search, role), nil
}
