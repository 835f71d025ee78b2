package huhforms

import (
	"strconv"

	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
)

// ProjectFormValues holds the create project form fields.
// OwnerID is typed as text and parsed on submit.
type ProjectFormValues struct {
	Title        string
	Description  string
	PricePerHour string
	Skills       string
	OwnerID      string
}

// CreateProjectForm creates a huh form for adding a new project
func CreateProjectForm(v *ProjectFormValues) *huh.Form {
	return newForm(
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter project title...").
			Validate(required("title")).
			Value(&v.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter project description...").
			CharLimit(1000).
			Lines(3).
			Validate(required("description")).
			Value(&v.Description),

		huh.NewInput().
			Key("pricePerHour").
			Title("Price per hour").
			Placeholder("25.00").
			Validate(func(s string) error {
				return models.ValidateValue("pricePerHour", s, "required,numeric")
			}).
			Value(&v.PricePerHour),

		huh.NewInput().
			Key("skills").
			Title("Skills").
			Description("Comma separated, e.g. React, Go, SQL").
			Validate(required("skills")).
			Value(&v.Skills),

		huh.NewInput().
			Key("id").
			Title("Recruiter ID").
			Validate(func(s string) error {
				if err := models.ValidateValue("id", s, "required,number"); err != nil {
					return err
				}
				_, err := strconv.Atoi(s)
				return err
			}).
			Value(&v.OwnerID),
	)
}
