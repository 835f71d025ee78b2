package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khedmalink/khedma/internal/models"
)

// ParseRole maps a role string to its constant
func ParseRole(roleStr string) (models.Role, error) {
	role := models.Role(strings.ToLower(strings.TrimSpace(roleStr)))
	if !role.Valid() {
		return "", fmt.Errorf("%w '%s' (must be: freelancer, recruiter, admin, validator)", models.ErrInvalidRole, roleStr)
	}
	return role, nil
}

// ParseEditStatus maps a status string to the edit vocabulary
func ParseEditStatus(statusStr string) (models.ProjectStatus, error) {
	status := models.ProjectStatus(strings.ToLower(strings.TrimSpace(statusStr)))
	if !status.Editable() {
		return "", fmt.Errorf("%w '%s' (must be: pending, active, finished)", models.ErrInvalidStatus, statusStr)
	}
	return status, nil
}

// ParseUserField maps a field name to an editable user field
func ParseUserField(fieldStr string) (models.UserField, error) {
	fields := map[string]models.UserField{
		"email": models.FieldEmail,
		"phone": models.FieldPhone,
		"link":  models.FieldLink,
	}

	field, ok := fields[strings.ToLower(strings.TrimSpace(fieldStr))]
	if !ok {
		return "", fmt.Errorf("%w '%s' (must be: email, phone, link)", models.ErrInvalidField, fieldStr)
	}
	return field, nil
}

// ParseRating accepts a whole number from 1 to 5
func ParseRating(ratingStr string) (int, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(ratingStr))
	if err != nil || rating < 1 || rating > 5 {
		return 0, fmt.Errorf("%w, got: %s", models.ErrInvalidRating, ratingStr)
	}
	return rating, nil
}

// ValidatePayload runs the models validator and tags failures as validation errors
func ValidatePayload(payload any) error {
	if err := models.Validate(payload); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}
