package huhforms

import (
	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
)

// UserFormValues holds the create user form fields
type UserFormValues struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Link      string
	Role      models.Role
}

// RoleOptions lists every role as a select option
func RoleOptions() []huh.Option[models.Role] {
	options := make([]huh.Option[models.Role], 0, len(models.Roles))
	for _, r := range models.Roles {
		options = append(options, huh.NewOption(roleLabel(r), r))
	}
	return options
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleRecruiter:
		return "Recruiter"
	case models.RoleAdmin:
		return "Admin"
	case models.RoleValidator:
		return "Validator"
	default:
		return "Freelancer"
	}
}

func required(name string) func(string) error {
	return func(s string) error {
		return models.ValidateValue(name, s, "required")
	}
}

// CreateUserForm creates a huh form for adding a new user
func CreateUserForm(v *UserFormValues) *huh.Form {
	if v.Role == "" {
		v.Role = models.RoleFreelancer
	}

	return newForm(
		huh.NewInput().Key("firstName").Title("First Name").Validate(required("firstName")).Value(&v.FirstName),
		huh.NewInput().Key("lastName").Title("Last Name").Validate(required("lastName")).Value(&v.LastName),
		huh.NewInput().
			Key("email").
			Title("Email").
			Validate(func(s string) error {
				return models.ValidateValue("email", s, "required,email")
			}).
			Value(&v.Email),
		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("password")).
			Value(&v.Password),
		huh.NewInput().Key("phone").Title("Phone (optional)").Value(&v.Phone),
		huh.NewInput().Key("link").Title("Link (optional)").Placeholder("https://").Value(&v.Link),
		huh.NewSelect[models.Role]().
			Key("role").
			Title("Role").
			Options(RoleOptions()...).
			Value(&v.Role),
	)
}
