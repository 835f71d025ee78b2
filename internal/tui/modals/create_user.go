package modals

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/khedmalink/khedma/internal/tui/huhforms"
)

// UserCreator creates accounts
type UserCreator interface {
	CreateUser(ctx context.Context, user models.NewUser) error
}

// SubmitCreateUser validates the form values and creates the user
func SubmitCreateUser(ctx context.Context, client UserCreator, v huhforms.UserFormValues) Outcome {
	payload := models.NewUser{
		FirstName: strings.TrimSpace(v.FirstName),
		LastName:  strings.TrimSpace(v.LastName),
		Email:     strings.TrimSpace(v.Email),
		Password:  v.Password,
		Phone:     strings.TrimSpace(v.Phone),
		Link:      strings.TrimSpace(v.Link),
		Role:      v.Role,
	}
	if err := models.Validate(payload); err != nil {
		return Outcome{Err: err.Error()}
	}

	if err := client.CreateUser(ctx, payload); err != nil {
		slog.Error("error creating user", "email", payload.Email, "error", err)
		return failure(err, msgCreateUserFailed, msgNetwork)
	}
	return success
}

// NewCreateUser opens the create user dialog
func NewCreateUser(client UserCreator, theme huh.Theme) *Modal {
	values := &huhforms.UserFormValues{}
	return newModal(CreateUserKind, "Create User",
		func() *huh.Form { return huhforms.CreateUserForm(values).WithTheme(theme) },
		func(ctx context.Context) Outcome { return SubmitCreateUser(ctx, client, *values) },
	)
}
