package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/spf13/cobra"
)

// Result holds what a command wrote
type Result struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand runs cmd under a root carrying the global flags, with
// the test CLI injected through the context. args follow the command name.
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args ...string) (Result, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, c, cmd, "", args...)
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin set to input
func ExecuteCLICommandWithInput(t *testing.T, c *cli.CLI, cmd *cobra.Command, input string, args ...string) (Result, error) {
	t.Helper()

	if c == nil {
		t.Fatal("cli cannot be nil - SetupCLITest must be called first")
	}

	root := &cobra.Command{
		Use: "khedma",
		// Disable usage output on error for cleaner test output
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cli.AddGlobalFlags(root)
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(append([]string{cmd.Name()}, args...))

	err := root.ExecuteContext(cli.WithCLI(context.Background(), c))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
