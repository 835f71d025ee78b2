package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/khedmalink/khedma/internal/cli"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// ExitCode returns the exit code carried by err, ExitSuccess for nil and
// -1 when err carries none
func ExitCode(err error) int {
	if err == nil {
		return cli.ExitSuccess
	}
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}
