// Package user holds the account management commands
package user

import (
	"github.com/spf13/cobra"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage marketplace accounts",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(RateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
