package huhforms

import (
	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
)

// InitialEditStatus is the preselected option for a project whose current
// status may come from the listing vocabulary
func InitialEditStatus(current models.ProjectStatus) models.ProjectStatus {
	if current.Editable() {
		return current
	}
	return models.StatusPending
}

// EditStatusForm offers the edit vocabulary only
func EditStatusForm(projectTitle string, status *models.ProjectStatus) *huh.Form {
	options := make([]huh.Option[models.ProjectStatus], 0, len(models.EditableStatuses))
	for _, s := range models.EditableStatuses {
		options = append(options, huh.NewOption(string(s)+" - "+s.Description(), s))
	}

	return newForm(
		huh.NewSelect[models.ProjectStatus]().
			Key("status").
			Title("Project status").
			Description(projectTitle).
			Options(options...).
			Value(status),
	)
}
