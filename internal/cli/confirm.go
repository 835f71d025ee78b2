package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes prompt to out and reads one answer line from in.
// Only y or yes (any case) confirms; EOF declines.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s (y/N): ", prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
