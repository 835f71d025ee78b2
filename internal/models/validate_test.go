package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNewUser(t *testing.T) {
	valid := NewUser{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret",
		Role:      RoleFreelancer,
	}
	require.NoError(t, Validate(valid))

	tests := []struct {
		name   string
		mutate func(*NewUser)
		want   string
	}{
		{"missing first name", func(u *NewUser) { u.FirstName = "" }, "firstName is required"},
		{"bad email", func(u *NewUser) { u.Email = "not-an-email" }, "email must be a valid email"},
		{"unknown role", func(u *NewUser) { u.Role = "owner" }, "role must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			err := Validate(u)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateNewProjectJoinsMessages(t *testing.T) {
	err := Validate(NewProject{PricePerHour: "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "pricePerHour must be a number")
	assert.Contains(t, err.Error(), "id is required")
}

func TestValidateValue(t *testing.T) {
	assert.NoError(t, ValidateValue("email", "a@b.co", "required,email"))

	err := ValidateValue("email", "", "required")
	require.Error(t, err)
	assert.Equal(t, "email is required", err.Error())
}
