package api

import (
	"context"
	"net/http"

	"github.com/khedmalink/khedma/internal/models"
)

// SendApplication applies a freelancer to a project
func (c *Client) SendApplication(ctx context.Context, projectID, userID string) error {
	payload := map[string]string{"projectId": projectID, "userId": userID}
	_, err := c.do(ctx, http.MethodPost, "/request/send", nil, payload)
	return err
}

// AcceptApplication accepts request requestID on project projectID
func (c *Client) AcceptApplication(ctx context.Context, projectID, requestID string) error {
	payload := map[string]string{"pr_id": projectID, "re_id": requestID}
	_, err := c.do(ctx, http.MethodPost, "/request/accept", nil, payload)
	return err
}

// ProjectRequests lists the applications made to a project
func (c *Client) ProjectRequests(ctx context.Context, projectID int) ([]models.Request, error) {
	body, err := c.do(ctx, http.MethodGet, "/request/project/request", idQuery(projectID), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Request](body)
}
