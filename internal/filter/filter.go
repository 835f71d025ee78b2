// Package filter derives the visible rows of the dashboard from the cached
// lists. Every function is pure and preserves the input order.
package filter

import (
	"strings"

	"github.com/khedmalink/khedma/internal/models"
)

// RoleFilter narrows the user list to one role, or to every role
type RoleFilter string

// RoleAll disables role filtering
const RoleAll RoleFilter = "all"

// RoleFilters lists the filter options in display order
var RoleFilters = []RoleFilter{
	RoleAll,
	RoleFilter(models.RoleFreelancer),
	RoleFilter(models.RoleRecruiter),
	RoleFilter(models.RoleAdmin),
	RoleFilter(models.RoleValidator),
}

// Next returns the filter after f, wrapping around
func (f RoleFilter) Next() RoleFilter {
	for i, candidate := range RoleFilters {
		if candidate == f {
			return RoleFilters[(i+1)%len(RoleFilters)]
		}
	}
	return RoleAll
}

// Label returns the option text shown in the dashboard
func (f RoleFilter) Label() string {
	switch f {
	case RoleFilter(models.RoleFreelancer):
		return "Freelancers"
	case RoleFilter(models.RoleRecruiter):
		return "Recruiters"
	case RoleFilter(models.RoleAdmin):
		return "Admins"
	case RoleFilter(models.RoleValidator):
		return "Validator"
	default:
		return "All Users"
	}
}

// Allows reports whether a user with role passes the filter
func (f RoleFilter) Allows(role models.Role) bool {
	return f == RoleAll || f == "" || RoleFilter(role) == f
}

// MatchUser reports whether u matches search (case-insensitive substring of
// "firstName lastName" or email) and passes the role filter
func MatchUser(u models.User, search string, role RoleFilter) bool {
	if !role.Allows(u.Role) {
		return false
	}
	needle := strings.ToLower(search)
	fullName := strings.ToLower(u.FirstName + " " + u.LastName)
	return strings.Contains(fullName, needle) ||
		strings.Contains(strings.ToLower(u.Email), needle)
}

// MatchProject reports whether p's title or description contains search,
// case-insensitively
func MatchProject(p models.Project, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// Users returns the users matching search and role
func Users(users []models.User, search string, role RoleFilter) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if MatchUser(u, search, role) {
			out = append(out, u)
		}
	}
	return out
}

// Projects returns the projects matching search
func Projects(projects []models.Project, search string) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if MatchProject(p, search) {
			out = append(out, p)
		}
	}
	return out
}
