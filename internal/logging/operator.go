package logging

import (
	"os"
	"os/user"
)

// Operator names the OS account running the console. Log lines carry it so
// that several machines sharing one Redis-backed login can be told apart.
// Falls back to $USER, then "unknown".
func Operator() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}
