package modals

import (
	"context"
	"log/slog"

	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/khedmalink/khedma/internal/tui/huhforms"
)

// StatusUpdater changes a project's status
type StatusUpdater interface {
	UpdateProjectStatus(ctx context.Context, id int, status models.ProjectStatus) error
}

// SubmitEditStatus sends the chosen status
func SubmitEditStatus(ctx context.Context, client StatusUpdater, projectID int, status models.ProjectStatus) Outcome {
	if !status.Editable() {
		return Outcome{Err: models.ErrInvalidStatus.Error()}
	}
	if err := client.UpdateProjectStatus(ctx, projectID, status); err != nil {
		slog.Error("error updating project status", "project_id", projectID, "status", status, "error", err)
		return failure(err, msgStatusFailed, msgStatusUnreachable)
	}
	return success
}

// NewEditStatus opens the status dialog for project
func NewEditStatus(client StatusUpdater, project models.Project, theme huh.Theme) *Modal {
	status := huhforms.InitialEditStatus(project.Status)
	return newModal(EditStatusKind, "Edit Project Status",
		func() *huh.Form { return huhforms.EditStatusForm(project.Title, &status).WithTheme(theme) },
		func(ctx context.Context) Outcome { return SubmitEditStatus(ctx, client, project.ID, status) },
	)
}
