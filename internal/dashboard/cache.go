// Package dashboard holds the console's snapshot of users and projects.
// The snapshot is replaced wholesale on every load; there is no merging.
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/khedmalink/khedma/internal/models"
	"golang.org/x/sync/errgroup"
)

// Lister fetches the two admin collections
type Lister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// LoadResult is the outcome of one load. A failed half keeps its error and
// leaves the corresponding cached list untouched when applied.
type LoadResult struct {
	Users       []models.User
	UsersErr    error
	Projects    []models.Project
	ProjectsErr error
}

// Failed reports whether both halves failed
func (r LoadResult) Failed() bool {
	return r.UsersErr != nil && r.ProjectsErr != nil
}

// Cache is the in-memory snapshot held by the dashboard
type Cache struct {
	lister Lister
	logger *slog.Logger

	mu       sync.RWMutex
	users    []models.User
	projects []models.Project
	loaded   bool

	// requested is the newest generation handed out by Begin,
	// applied the newest generation whose result was applied
	requested uint64
	applied   uint64
}

// NewCache creates an empty cache backed by lister
func NewCache(lister Lister, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		lister:   lister,
		logger:   logger,
		users:    []models.User{},
		projects: []models.Project{},
	}
}

// Fetch lists users and projects concurrently. The two calls are
// independent: one failing neither cancels nor blocks the other.
// Failures are logged and recorded in the result.
func (c *Cache) Fetch(ctx context.Context) LoadResult {
	var res LoadResult
	var g errgroup.Group

	g.Go(func() error {
		users, err := c.lister.ListUsers(ctx)
		if err != nil {
			c.logger.Error("error loading users", "error", err)
			res.UsersErr = err
			return nil
		}
		res.Users = users
		return nil
	})
	g.Go(func() error {
		projects, err := c.lister.ListProjects(ctx)
		if err != nil {
			c.logger.Error("error loading projects", "error", err)
			res.ProjectsErr = err
			return nil
		}
		res.Projects = projects
		return nil
	})
	_ = g.Wait()

	return res
}

// Begin reserves a generation number for a load about to start
func (c *Cache) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requested++
	return c.requested
}

// ApplyIf applies res unless a newer generation has already been applied.
// Returns false when res was stale and dropped.
func (c *Cache) ApplyIf(gen uint64, res LoadResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.applied {
		c.logger.Debug("dropping stale load", "generation", gen, "applied", c.applied)
		return false
	}
	c.applied = gen
	c.apply(res)
	return true
}

// Apply replaces each list whose fetch succeeded
func (c *Cache) Apply(res LoadResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(res)
}

func (c *Cache) apply(res LoadResult) {
	if res.UsersErr == nil {
		c.users = nonNilUsers(res.Users)
	}
	if res.ProjectsErr == nil {
		c.projects = nonNilProjects(res.Projects)
	}
	c.loaded = true
}

// LoadAll fetches both collections and applies the result
func (c *Cache) LoadAll(ctx context.Context) LoadResult {
	gen := c.Begin()
	res := c.Fetch(ctx)
	c.ApplyIf(gen, res)
	return res
}

// Loaded reports whether at least one load has completed
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Users returns the cached users. Callers must not modify the slice.
func (c *Cache) Users() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.users
}

// Projects returns the cached projects. Callers must not modify the slice.
func (c *Cache) Projects() []models.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projects
}

// RemoveUser drops the user with id from the snapshot.
// Returns false if no such user was cached.
func (c *Cache) RemoveUser(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, u := range c.users {
		if u.ID == id {
			users := make([]models.User, 0, len(c.users)-1)
			users = append(users, c.users[:i]...)
			c.users = append(users, c.users[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveProject drops the project with id from the snapshot.
// Returns false if no such project was cached.
func (c *Cache) RemoveProject(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.projects {
		if p.ID == id {
			projects := make([]models.Project, 0, len(c.projects)-1)
			projects = append(projects, c.projects[:i]...)
			c.projects = append(projects, c.projects[i+1:]...)
			return true
		}
	}
	return false
}

func nonNilUsers(users []models.User) []models.User {
	if users == nil {
		return []models.User{}
	}
	return users
}

func nonNilProjects(projects []models.Project) []models.Project {
	if projects == nil {
		return []models.Project{}
	}
	return projects
}
