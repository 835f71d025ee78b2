package huhforms

import (
	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
)

// EditFieldForm picks one of the editable contact fields and its new value
func EditFieldForm(userName string, field *models.UserField, value *string) *huh.Form {
	options := make([]huh.Option[models.UserField], 0, len(models.EditableUserFields))
	for _, f := range models.EditableUserFields {
		options = append(options, huh.NewOption(f.Label(), f))
	}
	if *field == "" {
		*field = models.FieldEmail
	}

	return newForm(
		huh.NewSelect[models.UserField]().
			Key("field").
			Title("Field to edit").
			Description(userName).
			Options(options...).
			Value(field),

		huh.NewInput().
			Key("value").
			Title("New value").
			Validate(required("value")).
			Value(value),
	)
}
