package store

import (
	"context"
	"sync"

	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/cache"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/notify"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/repo"
)

// Manager keeps one Store per signed-in user. Sign-in creates and loads the
// store; sign-out drops it, which is the whole reset: the next sign-in
// starts from empty tasks and the bootstrap project set again.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store

	taskRepo    repo.TaskRepo
	projectRepo repo.ProjectRepo
	cache       *cache.TaskCache
	sink        notify.Sink
}

// NewManager returns an empty Manager. cache may be nil.
func NewManager(tasks repo.TaskRepo, projects repo.ProjectRepo, c *cache.TaskCache, sink notify.Sink) *Manager {
	return &Manager{
		stores:      make(map[string]*Store),
		taskRepo:    tasks,
		projectRepo: projects,
		cache:       c,
		sink:        sink,
	}
}

// Get returns the user's store, creating and loading it on first access.
func (m *Manager) Get(ctx context.Context, userID string) *Store {
	m.mu.Lock()
	s, ok := m.stores[userID]
	if !ok {
		s = New(userID, m.taskRepo, m.projectRepo, m.cache, m.sink)
		m.stores[userID] = s
	}
	m.mu.Unlock()
	if !ok {
		s.Load(ctx)
	}
	return s
}

// Drop discards the user's store on sign-out. Purely a view-state reset;
// nothing is deleted remotely.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	delete(m.stores, userID)
	m.mu.Unlock()
}
