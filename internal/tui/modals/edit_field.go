package modals

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/khedmalink/khedma/internal/tui/huhforms"
)

// FieldUpdater edits one contact field of a user
type FieldUpdater interface {
	UpdateUserField(ctx context.Context, id int, field models.UserField, value string) error
}

// SubmitEditField sends the new value. Failures of any kind are only
// logged: the dialog closes and the dashboard refreshes either way.
func SubmitEditField(ctx context.Context, client FieldUpdater, userID int, field models.UserField, value string) Outcome {
	if err := client.UpdateUserField(ctx, userID, field, strings.TrimSpace(value)); err != nil {
		slog.Error("error updating user field", "user_id", userID, "field", field, "error", err)
	}
	return success
}

// NewEditField opens the edit field dialog for user
func NewEditField(client FieldUpdater, user models.User, theme huh.Theme) *Modal {
	field := models.FieldEmail
	var value string
	return newModal(EditFieldKind, "Edit User",
		func() *huh.Form { return huhforms.EditFieldForm(user.FullName(), &field, &value).WithTheme(theme) },
		func(ctx context.Context) Outcome { return SubmitEditField(ctx, client, user.ID, field, value) },
	)
}
