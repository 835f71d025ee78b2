package huhforms

import (
	"testing"

	"github.com/khedmalink/khedma/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInitialEditStatus(t *testing.T) {
	tests := []struct {
		current models.ProjectStatus
		want    models.ProjectStatus
	}{
		{models.StatusActive, models.StatusActive},
		{models.StatusFinished, models.StatusFinished},
		{models.StatusPending, models.StatusPending},
		{models.StatusOpen, models.StatusPending},
		{models.StatusClosed, models.StatusPending},
		{"", models.StatusPending},
	}
	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			assert.Equal(t, tt.want, InitialEditStatus(tt.current))
		})
	}
}

func TestCreateUserFormDefaultsRole(t *testing.T) {
	v := &UserFormValues{}
	form := CreateUserForm(v)

	assert.NotNil(t, form)
	assert.Equal(t, models.RoleFreelancer, v.Role)
}

func TestEditFieldFormDefaultsToEmail(t *testing.T) {
	var field models.UserField
	var value string
	EditFieldForm("Ada Lovelace", &field, &value)

	assert.Equal(t, models.FieldEmail, field)
}

func TestRoleOptionsCoverEveryRole(t *testing.T) {
	assert.Len(t, RoleOptions(), len(models.Roles))
}
