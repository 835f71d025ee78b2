package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/khedmalink/khedma/internal/models"
)

// ListProjects returns every project
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/all/projects", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Project](body)
}

// UserProjects returns the projects owned by one recruiter
func (c *Client) UserProjects(ctx context.Context, userID int) ([]models.Project, error) {
	body, err := c.do(ctx, http.MethodGet, "/project/user/projects", idQuery(userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Project](body)
}

// CreateProject posts a new project attributed to project.OwnerID
func (c *Client) CreateProject(ctx context.Context, project models.NewProject) error {
	if project.Skills == nil {
		project.Skills = []string{}
	}
	_, err := c.do(ctx, http.MethodPost, "/project/create", nil, project)
	return err
}

// DeleteProject removes a project
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/project/delete", idQuery(id), nil)
	return err
}

// UpdateProjectStatus moves a project to one of the edit statuses
func (c *Client) UpdateProjectStatus(ctx context.Context, id int, status models.ProjectStatus) error {
	query := url.Values{
		"id":     []string{strconv.Itoa(id)},
		"status": []string{string(status)},
	}
	_, err := c.do(ctx, http.MethodPut, "/project/update", query, nil)
	return err
}
