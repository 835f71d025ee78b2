package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/khedmalink/khedma/internal/models"
)

// ============================================================================
// Role Parsing Tests
// ============================================================================

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Role
		wantErr  bool
	}{
		{"freelancer", models.RoleFreelancer, false},
		{"Recruiter", models.RoleRecruiter, false},
		{" ADMIN ", models.RoleAdmin, false},
		{"validator", models.RoleValidator, false},
		{"all", "", true},
		{"", "", true},
		{"manager", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidRole) {
					t.Errorf("Expected ErrInvalidRole for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if role != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, role)
			}
		})
	}
}

// ============================================================================
// Status Parsing Tests
// ============================================================================

func TestParseEditStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected models.ProjectStatus
		wantErr  bool
	}{
		{"pending", models.StatusPending, false},
		{"Active", models.StatusActive, false},
		{"finished", models.StatusFinished, false},
		// listing vocabulary is not accepted by the update endpoint
		{"open", "", true},
		{"closed", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := ParseEditStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidStatus) {
					t.Errorf("Expected ErrInvalidStatus for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if status != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, status)
			}
		})
	}
}

// ============================================================================
// Field Parsing Tests
// ============================================================================

func TestParseUserField(t *testing.T) {
	tests := []struct {
		input    string
		expected models.UserField
		wantErr  bool
	}{
		{"email", models.FieldEmail, false},
		{"PHONE", models.FieldPhone, false},
		{"link", models.FieldLink, false},
		{"password", "", true},
		{"role", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, err := ParseUserField(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidField) {
					t.Errorf("Expected ErrInvalidField for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if field != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, field)
			}
		})
	}
}

// ============================================================================
// Rating Parsing Tests
// ============================================================================

func TestParseRating(t *testing.T) {
	valid := map[string]int{"1": 1, "3": 3, " 5 ": 5}
	for input, expected := range valid {
		t.Run("valid "+input, func(t *testing.T) {
			rating, err := ParseRating(input)
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", input, err)
			}
			if rating != expected {
				t.Errorf("Expected %d, got %d", expected, rating)
			}
		})
	}

	for _, input := range []string{"0", "6", "-1", "four", "2.5", ""} {
		t.Run("invalid "+input, func(t *testing.T) {
			if _, err := ParseRating(input); !errors.Is(err, models.ErrInvalidRating) {
				t.Errorf("Expected ErrInvalidRating for %q, got %v", input, err)
			}
		})
	}
}

func TestValidatePayload(t *testing.T) {
	valid := models.NewUser{
		FirstName: "Amira",
		LastName:  "Haddad",
		Email:     "amira@example.com",
		Password:  "secret",
		Role:      models.RoleFreelancer,
	}
	if err := ValidatePayload(valid); err != nil {
		t.Errorf("Expected valid payload, got %v", err)
	}

	invalid := valid
	invalid.Email = "not-an-email"
	err := ValidatePayload(invalid)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Expected ErrValidation, got %v", err)
	}
	if want := "email must be a valid email"; !strings.Contains(err.Error(), want) {
		t.Errorf("Expected %q in %q", want, err.Error())
	}
}
