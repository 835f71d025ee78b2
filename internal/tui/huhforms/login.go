package huhforms

import (
	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
)

// LoginForm asks for the admin's credentials
func LoginForm(email, password *string) *huh.Form {
	return newForm(
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("admin@khedmalink.com").
			Validate(func(s string) error {
				return models.ValidateValue("email", s, "required,email")
			}).
			Value(email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				return models.ValidateValue("password", s, "required")
			}).
			Value(password),
	)
}
