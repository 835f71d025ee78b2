// Package fakeapi is an in-memory stand-in for the marketplace backend used
// by tests. It records every call and can be told to fail individual routes.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/khedmalink/khedma/internal/models"
)

// Call is one recorded request
type Call struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
}

type failure struct {
	status  int
	message string
	raw     bool
}

// Server is a fake backend
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    []models.User
	projects []models.Project
	calls    []Call
	failures map[string]failure

	// Envelope wraps list responses in {"data": [...]} when true
	Envelope bool
	// Token is returned from /user/login when non-empty
	Token string
}

// New starts a fake backend seeded with users and projects.
// The server is closed when the test ends.
func New(t *testing.T, users []models.User, projects []models.Project) *Server {
	t.Helper()

	s := &Server{
		users:    append([]models.User(nil), users...),
		projects: append([]models.Project(nil), projects...),
		failures: make(map[string]failure),
		Envelope: true,
	}

	r := mux.NewRouter()
	r.HandleFunc("/admin/all/users", s.listUsers).Methods(http.MethodGet)
	r.HandleFunc("/admin/all/projects", s.listProjects).Methods(http.MethodGet)
	r.HandleFunc("/user/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/user/create", s.createUser).Methods(http.MethodPost)
	r.HandleFunc("/user/delete", s.deleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/user/update", s.ok).Methods(http.MethodPut, http.MethodPost)
	r.HandleFunc("/user/rating", s.ok).Methods(http.MethodPost)
	r.HandleFunc("/project/create", s.createProject).Methods(http.MethodPost)
	r.HandleFunc("/project/delete", s.deleteProject).Methods(http.MethodDelete)
	r.HandleFunc("/project/update", s.updateProject).Methods(http.MethodPut)
	r.HandleFunc("/project/user/projects", s.listProjects).Methods(http.MethodGet)
	r.HandleFunc("/request/send", s.ok).Methods(http.MethodPost)
	r.HandleFunc("/request/accept", s.ok).Methods(http.MethodPost)
	r.HandleFunc("/request/project/request", s.listRequests).Methods(http.MethodGet)
	r.Use(s.record)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Fail makes every later request to path answer with status and a JSON
// {"message": message} body
func (s *Server) Fail(path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, message: message}
}

// FailRaw makes path answer with status and a non-JSON body
func (s *Server) FailRaw(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, raw: true}
}

// Recover clears a failure set with Fail
func (s *Server) Recover(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, path)
}

// Calls returns the recorded calls, optionally filtered by method and path
func (s *Server) Calls(method, path string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Call
	for _, c := range s.calls {
		if (method == "" || c.Method == method) && (path == "" || c.Path == path) {
			out = append(out, c)
		}
	}
	return out
}

// Users returns the server-side user list
func (s *Server) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

// Projects returns the server-side project list
func (s *Server) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Project(nil), s.projects...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := Call{Method: r.Method, Path: r.URL.Path, Query: map[string]string{}}
		for k := range r.URL.Query() {
			call.Query[k] = r.URL.Query().Get(k)
		}
		if r.Body != nil {
			data, _ := io.ReadAll(r.Body)
			if len(data) > 0 {
				_ = json.Unmarshal(data, &call.Body)
			}
			r.Body = io.NopCloser(bytes.NewReader(data))
		}

		s.mu.Lock()
		s.calls = append(s.calls, call)
		f, failing := s.failures[r.URL.Path]
		s.mu.Unlock()

		if failing {
			if f.raw {
				w.WriteHeader(f.status)
				_, _ = w.Write([]byte("<html>upstream error</html>"))
				return
			}
			writeJSON(w, f.status, map[string]string{"message": f.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeList(w http.ResponseWriter, list any) {
	if s.Envelope {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": list})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	s.writeList(w, s.Users())
}

func (s *Server) listProjects(w http.ResponseWriter, _ *http.Request) {
	s.writeList(w, s.Projects())
}

func (s *Server) listRequests(w http.ResponseWriter, _ *http.Request) {
	s.writeList(w, []models.Request{})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": s.Token})
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var nu models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&nu); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad payload"})
		return
	}
	s.mu.Lock()
	u := models.User{
		ID:        s.nextUserID(),
		Email:     nu.Email,
		FirstName: nu.FirstName,
		LastName:  nu.LastName,
		Phone:     nu.Phone,
		Link:      nu.Link,
		Role:      nu.Role,
	}
	s.users = append(s.users, u)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": u})
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.URL.Query().Get("id"))
	s.mu.Lock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var np models.NewProject
	if err := json.NewDecoder(r.Body).Decode(&np); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad payload"})
		return
	}
	s.mu.Lock()
	p := models.Project{
		ID:           s.nextProjectID(),
		Title:        np.Title,
		Description:  np.Description,
		PricePerHour: models.Price(np.PricePerHour),
		Skills:       np.Skills,
		Status:       models.StatusOpen,
	}
	for i := range s.users {
		if s.users[i].ID == np.OwnerID {
			owner := s.users[i]
			p.User = &owner
		}
	}
	s.projects = append(s.projects, p)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": p})
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.URL.Query().Get("id"))
	s.mu.Lock()
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.URL.Query().Get("id"))
	status := models.ProjectStatus(r.URL.Query().Get("status"))
	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Status = status
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) ok(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) nextUserID() int {
	next := 1
	for _, u := range s.users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}

func (s *Server) nextProjectID() int {
	next := 1
	for _, p := range s.projects {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
