package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/khedmalink/khedma/internal/cli"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/spf13/cobra"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a mock cobra.Command with specified flags
func createTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	return cmd
}

func isUsageError(err error) bool {
	var usage *cli.UsageError
	return errors.As(err, &usage)
}

// ============================================================================
// ParseID Tests
// ============================================================================

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue int
		wantErr   bool
	}{
		{name: "valid id", flagValue: 42},
		{name: "valid id = 1", flagValue: 1},
		{name: "large id", flagValue: 999999},
		{name: "zero id", flagValue: 0, wantErr: true},
		{name: "negative id", flagValue: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().Int("id", tt.flagValue, "user id")

			result, err := NewFlagParser(cmd).ParseID("id")

			if tt.wantErr {
				if !isUsageError(err) {
					t.Fatalf("expected usage error, got %v", err)
				}
				if !strings.Contains(err.Error(), "--id must be greater than 0") {
					t.Errorf("unexpected message %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if result != tt.flagValue {
				t.Errorf("expected %d, got %d", tt.flagValue, result)
			}
		})
	}
}

// ============================================================================
// ParseString Tests
// ============================================================================

func TestParseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue string
		wantValue string
		wantErr   bool
	}{
		{name: "valid string", flagValue: "amira@example.com", wantValue: "amira@example.com"},
		{name: "string with whitespace trimmed", flagValue: "  trimmed  ", wantValue: "trimmed"},
		{name: "string with newlines trimmed", flagValue: "\nvalue\n", wantValue: "value"},
		{name: "empty string", flagValue: "", wantErr: true},
		{name: "whitespace only string", flagValue: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("email", "", "email flag")
			_ = cmd.Flags().Set("email", tt.flagValue)

			result, err := NewFlagParser(cmd).ParseString("email")

			if tt.wantErr {
				if !isUsageError(err) {
					t.Fatalf("expected usage error, got %v", err)
				}
				if !strings.Contains(err.Error(), "--email is required") {
					t.Errorf("unexpected message %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if result != tt.wantValue {
				t.Errorf("expected '%s', got '%s'", tt.wantValue, result)
			}
		})
	}
}

func TestParseStringOptional(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().String("search", "", "search flag")

	result, err := NewFlagParser(cmd).ParseStringOptional("search")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}

	_ = cmd.Flags().Set("search", " khedma ")
	result, _ = NewFlagParser(cmd).ParseStringOptional("search")
	if result != "khedma" {
		t.Errorf("expected 'khedma', got %q", result)
	}
}

// ============================================================================
// Domain Flag Tests
// ============================================================================

func TestParseRoleStatusField(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().String("role", "Recruiter", "")
	cmd.Flags().String("status", "finished", "")
	cmd.Flags().String("field", "phone", "")
	cmd.Flags().String("rating", "4", "")
	parser := NewFlagParser(cmd)

	role, err := parser.ParseRole("role")
	if err != nil || role != models.RoleRecruiter {
		t.Errorf("expected recruiter, got %q (%v)", role, err)
	}
	status, err := parser.ParseStatus("status")
	if err != nil || status != models.StatusFinished {
		t.Errorf("expected finished, got %q (%v)", status, err)
	}
	field, err := parser.ParseField("field")
	if err != nil || field != models.FieldPhone {
		t.Errorf("expected phone, got %q (%v)", field, err)
	}
	rating, err := parser.ParseRating("rating")
	if err != nil || rating != 4 {
		t.Errorf("expected 4, got %d (%v)", rating, err)
	}
}

func TestParseRoleStatusField_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flag    string
		value   string
		parse   func(*FlagParser) error
		wantErr error
	}{
		{
			name:    "unknown role",
			flag:    "role",
			value:   "manager",
			parse:   func(p *FlagParser) error { _, err := p.ParseRole("role"); return err },
			wantErr: models.ErrInvalidRole,
		},
		{
			name:    "listing status is not editable",
			flag:    "status",
			value:   "open",
			parse:   func(p *FlagParser) error { _, err := p.ParseStatus("status"); return err },
			wantErr: models.ErrInvalidStatus,
		},
		{
			name:    "password is not an editable field",
			flag:    "field",
			value:   "password",
			parse:   func(p *FlagParser) error { _, err := p.ParseField("field"); return err },
			wantErr: models.ErrInvalidField,
		},
		{
			name:    "rating out of range",
			flag:    "rating",
			value:   "9",
			parse:   func(p *FlagParser) error { _, err := p.ParseRating("rating"); return err },
			wantErr: models.ErrInvalidRating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String(tt.flag, tt.value, "")

			err := tt.parse(NewFlagParser(cmd))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// ============================================================================
// OutputFormats Tests
// ============================================================================

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		jsonFlag  bool
		quietFlag bool
	}{
		{name: "both false"},
		{name: "json true", jsonFlag: true},
		{name: "quiet true", quietFlag: true},
		{name: "both true", jsonFlag: true, quietFlag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().Bool("json", tt.jsonFlag, "json output")
			cmd.Flags().Bool("quiet", tt.quietFlag, "quiet mode")

			jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if jsonOutput != tt.jsonFlag {
				t.Errorf("expected json=%v, got %v", tt.jsonFlag, jsonOutput)
			}
			if quietMode != tt.quietFlag {
				t.Errorf("expected quiet=%v, got %v", tt.quietFlag, quietMode)
			}
		})
	}
}

func TestOutputFormats_MissingFlags(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().Bool("json", false, "json output")

	_, _, err := NewFlagParser(cmd).OutputFormats()
	if err == nil || !strings.Contains(err.Error(), "quiet") {
		t.Errorf("expected error mentioning quiet, got %v", err)
	}
}

// ============================================================================
// Edge Case Tests
// ============================================================================

func TestParse_NonExistentFlag(t *testing.T) {
	t.Parallel()

	parser := NewFlagParser(createTestCommand())

	if _, err := parser.ParseString("non-existent"); err == nil {
		t.Error("expected error for non-existent string flag, got nil")
	}
	if _, err := parser.ParseID("non-existent"); err == nil {
		t.Error("expected error for non-existent int flag, got nil")
	}
	if _, err := parser.ParseBool("non-existent"); err == nil {
		t.Error("expected error for non-existent bool flag, got nil")
	}
}
