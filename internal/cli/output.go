package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/khedmalink/khedma/internal/cli/styles"
	"github.com/khedmalink/khedma/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to the process streams
	Out    io.Writer
	ErrOut io.Writer
}

// Message is the result of a command that changes something
type Message struct {
	Text string `json:"message"`
	ID   int    `json:"id,omitempty"`
}

// GetID returns the affected id, 0 when there is none
func (m Message) GetID() int {
	return m.ID
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		return f.quietPrint(data)
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// quietPrint prints ids only, one per line
func (f *OutputFormatter) quietPrint(data any) error {
	var ids []int
	switch v := data.(type) {
	case []models.User:
		for _, u := range v {
			ids = append(ids, u.ID)
		}
	case []models.Project:
		for _, p := range v {
			ids = append(ids, p.ID)
		}
	case interface{ GetID() int }:
		if id := v.GetID(); id > 0 {
			ids = append(ids, id)
		}
	}

	for _, id := range ids {
		if _, err := fmt.Fprintf(f.out(), "%d\n", id); err != nil {
			return err
		}
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	var b strings.Builder

	switch v := data.(type) {
	case Message:
		b.WriteString(styles.SuccessStyle.Render("✓") + " " + v.Text + "\n")
	case []models.User:
		if len(v) == 0 {
			b.WriteString("No users found\n")
			break
		}
		fmt.Fprintf(&b, "Found %d users:\n\n", len(v))
		for _, u := range v {
			b.WriteString("  " + styles.RenderUser(u) + "\n")
		}
	case []models.Project:
		if len(v) == 0 {
			b.WriteString("No projects found\n")
			break
		}
		fmt.Fprintf(&b, "Found %d projects:\n\n", len(v))
		for _, p := range v {
			b.WriteString("  " + styles.RenderProject(p) + "\n")
		}
	case []models.Request:
		if len(v) == 0 {
			b.WriteString("No applications found\n")
			break
		}
		for _, r := range v {
			fmt.Fprintf(&b, "  project %s  user %s  %s\n", r.ProjectID, r.UserID, r.Status)
		}
	case SessionStatus:
		if v.LoggedIn {
			b.WriteString("Logged in\n")
		} else {
			b.WriteString("Logged out\n")
		}
		fmt.Fprintf(&b, "API: %s\n", v.APIURL)
	default:
		fmt.Fprintf(&b, "%+v\n", data)
	}

	_, err := io.WriteString(f.out(), b.String())
	return err
}

// SessionStatus is the result of the status command
type SessionStatus struct {
	LoggedIn bool   `json:"loggedIn"`
	APIURL   string `json:"apiUrl"`
}
