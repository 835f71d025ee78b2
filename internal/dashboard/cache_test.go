package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/khedmalink/khedma/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	users       []models.User
	projects    []models.Project
	usersErr    error
	projectsErr error
	// usersGate blocks ListUsers until closed, when set
	usersGate chan struct{}
	calls     atomic.Int32
}

func (s *stubLister) ListUsers(ctx context.Context) ([]models.User, error) {
	s.calls.Add(1)
	if s.usersGate != nil {
		<-s.usersGate
	}
	return s.users, s.usersErr
}

func (s *stubLister) ListProjects(ctx context.Context) ([]models.Project, error) {
	s.calls.Add(1)
	return s.projects, s.projectsErr
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadAll_ReplacesBothLists(t *testing.T) {
	lister := &stubLister{
		users:    []models.User{{ID: 1}, {ID: 2}},
		projects: []models.Project{{ID: 10}},
	}
	c := NewCache(lister, quietLogger())
	assert.False(t, c.Loaded())

	res := c.LoadAll(context.Background())
	require.NoError(t, res.UsersErr)
	require.NoError(t, res.ProjectsErr)
	assert.True(t, c.Loaded())
	assert.Len(t, c.Users(), 2)
	assert.Len(t, c.Projects(), 1)
	assert.EqualValues(t, 2, lister.calls.Load())
}

func TestLoadAll_OneFailureDoesNotBlockTheOther(t *testing.T) {
	lister := &stubLister{
		usersErr: errors.New("boom"),
		projects: []models.Project{{ID: 10}, {ID: 11}},
	}
	c := NewCache(lister, quietLogger())
	c.Apply(LoadResult{Users: []models.User{{ID: 99}}})

	res := c.LoadAll(context.Background())
	assert.Error(t, res.UsersErr)
	assert.False(t, res.Failed())

	// failed half keeps the previous snapshot, the other half is replaced
	assert.Equal(t, 99, c.Users()[0].ID)
	assert.Len(t, c.Projects(), 2)
}

func TestFetch_RunsConcurrently(t *testing.T) {
	gate := make(chan struct{})
	lister := &stubLister{usersGate: gate, projects: []models.Project{{ID: 1}}}
	c := NewCache(lister, quietLogger())

	done := make(chan LoadResult)
	go func() { done <- c.Fetch(context.Background()) }()

	// projects must be requested while users is still blocked
	deadline := time.After(2 * time.Second)
	for lister.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("projects fetch did not start while users fetch was pending")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	close(gate)

	res := <-done
	assert.Len(t, res.Projects, 1)
}

func TestApplyIf_DropsStaleGeneration(t *testing.T) {
	c := NewCache(&stubLister{}, quietLogger())

	older := c.Begin()
	newer := c.Begin()

	assert.True(t, c.ApplyIf(newer, LoadResult{Users: []models.User{{ID: 2}}}))
	assert.False(t, c.ApplyIf(older, LoadResult{Users: []models.User{{ID: 1}}}))
	assert.Equal(t, 2, c.Users()[0].ID)
}

func TestApply_NilListsBecomeEmpty(t *testing.T) {
	c := NewCache(&stubLister{}, quietLogger())
	c.Apply(LoadResult{})
	assert.NotNil(t, c.Users())
	assert.NotNil(t, c.Projects())
	assert.Empty(t, c.Users())
}

func TestRemoveUser_RemovesExactlyOne(t *testing.T) {
	c := NewCache(&stubLister{}, quietLogger())
	c.Apply(LoadResult{Users: []models.User{{ID: 1}, {ID: 2}, {ID: 3}}})
	before := c.Users()

	assert.True(t, c.RemoveUser(2))
	ids := []int{}
	for _, u := range c.Users() {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []int{1, 3}, ids)

	// previously handed out slice is not rewritten
	assert.Equal(t, 2, before[1].ID)

	assert.False(t, c.RemoveUser(42))
	assert.Len(t, c.Users(), 2)
}

func TestRemoveProject(t *testing.T) {
	c := NewCache(&stubLister{}, quietLogger())
	c.Apply(LoadResult{Projects: []models.Project{{ID: 10}, {ID: 11}}})

	assert.True(t, c.RemoveProject(10))
	assert.Len(t, c.Projects(), 1)
	assert.Equal(t, 11, c.Projects()[0].ID)
	assert.False(t, c.RemoveProject(10))
}
