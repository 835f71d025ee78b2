package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Price is an hourly rate kept as the decimal string the backend sends.
// It also accepts a bare JSON number.
type Price string

// UnmarshalJSON accepts "12.50", 12.5 and null
func (p *Price) UnmarshalJSON(data []byte) error {
	v, err := looseString(data)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*p = Price(v)
	return nil
}

// looseString decodes a JSON string or number to its text, null to ""
func looseString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// Project is a job posting owned by a recruiter
type Project struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	PricePerHour Price         `json:"pricePerHour"`
	Skills       []string      `json:"skills"`
	Status       ProjectStatus `json:"status"`
	CreationDate string        `json:"creationDate"`
	User         *User         `json:"user,omitempty"`
	Requests     []Request     `json:"requests,omitempty"`
}

// GetID returns the project id (used by quiet CLI output)
func (p Project) GetID() int {
	return p.ID
}

// OwnerName returns the owning recruiter's name, or N/A when absent
func (p Project) OwnerName() string {
	if p.User == nil {
		return "N/A"
	}
	return p.User.FullName()
}

// NewProject is the payload for creating a project.
// OwnerID is the recruiter's user id and is sent as "id".
type NewProject struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	PricePerHour string   `json:"pricePerHour" validate:"required,numeric"`
	Skills       []string `json:"skills"`
	OwnerID      int      `json:"id" validate:"required,gt=0"`
}

// ParseSkills splits a comma separated skill list, trimming each entry and
// dropping empty ones. An empty string yields an empty, non-nil slice.
func ParseSkills(text string) []string {
	skills := []string{}
	for _, part := range strings.Split(text, ",") {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
