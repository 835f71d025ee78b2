// Package project holds the project management commands
package project

import (
	"github.com/spf13/cobra"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(RequestsCmd())
	cmd.AddCommand(MineCmd())

	return cmd
}
