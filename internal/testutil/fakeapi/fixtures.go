package fakeapi

import "github.com/khedmalink/khedma/internal/models"

// SampleUsers returns a small mixed-role user list
func SampleUsers() []models.User {
	return []models.User{
		{ID: 1, FirstName: "Amal", LastName: "Ben Salah", Email: "amal@khedmalink.com", Role: models.RoleFreelancer, Link: "https://amal.dev", Rating: &models.Rating{ID: 1, Rating: 4}},
		{ID: 2, FirstName: "Karim", LastName: "Trabelsi", Email: "karim@corp.tn", Role: models.RoleRecruiter, Phone: "+216 20 000 000"},
		{ID: 3, FirstName: "Admin", LastName: "Root", Email: "admin@khedmalink.com", Role: models.RoleAdmin},
		{ID: 4, FirstName: "Lina", LastName: "Haddad", Email: "lina@review.tn", Role: models.RoleValidator},
	}
}

// SampleProjects returns projects owned by the sample recruiter
func SampleProjects() []models.Project {
	recruiter := SampleUsers()[1]
	return []models.Project{
		{ID: 10, Title: "Build a React Website", Description: "Landing page and dashboard", PricePerHour: "25", Skills: []string{"React", "CSS"}, Status: models.StatusOpen, User: &recruiter},
		{ID: 11, Title: "Go API", Description: "REST backend for payments", PricePerHour: "40.5", Skills: []string{"Go", "SQL"}, Status: models.StatusPending, User: &recruiter},
	}
}
