package models

import "strings"

// Rating is the score attached to a freelancer account
type Rating struct {
	ID     int `json:"id"`
	Rating int `json:"rating"`
}

// User is a marketplace account as returned by the admin endpoints
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone,omitempty"`
	Link         string    `json:"link,omitempty"`
	Role         Role      `json:"role"`
	Rating       *Rating   `json:"rating,omitempty"`
	CreationDate string    `json:"creationDate"`
	Projects     []Project `json:"project,omitempty"`
	Requests     []Request `json:"request,omitempty"`
}

// GetID returns the user id (used by quiet CLI output)
func (u User) GetID() int {
	return u.ID
}

// FullName joins first and last name with a single space
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ShowsRating reports whether a rating should be rendered for this user.
// Ratings are meaningful for freelancers only.
func (u User) ShowsRating() bool {
	return u.Role == RoleFreelancer && u.Rating != nil
}

// Stars renders a 5-star bar for the user's rating
func (u User) Stars() string {
	n := 0
	if u.Rating != nil {
		n = min(max(u.Rating.Rating, 0), 5)
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// NewUser is the payload for creating an account
type NewUser struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Phone     string `json:"phone"`
	Link      string `json:"link"`
	Role      Role   `json:"role" validate:"required,oneof=freelancer recruiter admin validator"`
}
