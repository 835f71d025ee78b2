package modals

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/khedmalink/khedma/internal/models"
	"github.com/khedmalink/khedma/internal/tui/huhforms"
)

// ProjectCreator creates projects
type ProjectCreator interface {
	CreateProject(ctx context.Context, project models.NewProject) error
}

// SubmitCreateProject parses skills and the owner id, validates and creates
// the project
func SubmitCreateProject(ctx context.Context, client ProjectCreator, v huhforms.ProjectFormValues) Outcome {
	ownerID, err := strconv.Atoi(strings.TrimSpace(v.OwnerID))
	if err != nil {
		return Outcome{Err: "id must be a number"}
	}

	payload := models.NewProject{
		Title:        strings.TrimSpace(v.Title),
		Description:  strings.TrimSpace(v.Description),
		PricePerHour: strings.TrimSpace(v.PricePerHour),
		Skills:       models.ParseSkills(v.Skills),
		OwnerID:      ownerID,
	}
	if err := models.Validate(payload); err != nil {
		return Outcome{Err: err.Error()}
	}

	if err := client.CreateProject(ctx, payload); err != nil {
		slog.Error("error creating project", "title", payload.Title, "error", err)
		return failure(err, msgCreateProjFailed, msgNetwork)
	}
	return success
}

// NewCreateProject opens the create project dialog
func NewCreateProject(client ProjectCreator, theme huh.Theme) *Modal {
	values := &huhforms.ProjectFormValues{}
	return newModal(CreateProjectKind, "Create Project",
		func() *huh.Form { return huhforms.CreateProjectForm(values).WithTheme(theme) },
		func(ctx context.Context) Outcome { return SubmitCreateProject(ctx, client, *values) },
	)
}
