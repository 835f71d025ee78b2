package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/khedmalink/khedma/internal/models"
)

// LoginResult is what a successful login returns.
// Token is empty when the backend does not issue one.
type LoginResult struct {
	Token string
}

// Login checks admin credentials
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	body, err := c.do(ctx, http.MethodPost, "/user/login", nil, payload)
	if err != nil {
		return LoginResult{}, err
	}

	var resp struct {
		Token string `json:"token"`
		Data  struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	// the login body is informational; an unexpected shape is not a failure
	if json.Unmarshal(body, &resp) != nil {
		return LoginResult{}, nil
	}
	if resp.Token == "" {
		resp.Token = resp.Data.Token
	}
	return LoginResult{Token: resp.Token}, nil
}

// ListUsers returns every account
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/admin/all/users", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](body)
}

// CreateUser registers a new account
func (c *Client) CreateUser(ctx context.Context, user models.NewUser) error {
	_, err := c.do(ctx, http.MethodPost, "/user/create", nil, user)
	return err
}

// DeleteUser removes an account
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/user/delete", idQuery(id), nil)
	return err
}

// UpdateUser sets one field with PUT and a "fieldName" key
func (c *Client) UpdateUser(ctx context.Context, id int, field models.UserField, value string) error {
	payload := map[string]string{
		"id":        strconv.Itoa(id),
		"fieldName": string(field),
		"value":     value,
	}
	_, err := c.do(ctx, http.MethodPut, "/user/update", nil, payload)
	return err
}

// UpdateUserField sets one field the way the console's edit form does:
// POST with the key spelled "filedName", which the backend expects there.
func (c *Client) UpdateUserField(ctx context.Context, id int, field models.UserField, value string) error {
	payload := map[string]string{
		"id":        strconv.Itoa(id),
		"filedName": string(field),
		"value":     value,
	}
	_, err := c.do(ctx, http.MethodPost, "/user/update", nil, payload)
	return err
}

// RateFreelancer attaches a 1..5 rating to a freelancer
func (c *Client) RateFreelancer(ctx context.Context, id, rating int) error {
	if rating < 1 || rating > 5 {
		return models.ErrInvalidRating
	}
	query := url.Values{
		"rating": []string{strconv.Itoa(rating)},
		"id":     []string{strconv.Itoa(id)},
	}
	_, err := c.do(ctx, http.MethodPost, "/user/rating", query, nil)
	return err
}
