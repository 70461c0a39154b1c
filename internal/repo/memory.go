package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"

	"github.com/google/uuid"
)

// MemTaskRepo is an in-memory TaskRepo for the no-backend fallback mode.
// Ids are generated locally. It is also what the store tests run against.
type MemTaskRepo struct {
	mu    sync.Mutex
	tasks map[string][]dom.Task // userID -> tasks, insertion order

	// Error injection for tests. When set, the matching operation fails
	// without touching state.
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func NewMemTaskRepo() *MemTaskRepo {
	return &MemTaskRepo{tasks: make(map[string][]dom.Task)}
}

// List returns the user's tasks newest-created first.
func (r *MemTaskRepo) List(ctx context.Context, userID string) ([]dom.Task, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	src := r.tasks[userID]
	out := make([]dom.Task, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		out = append(out, src[i])
	}
	return out, nil
}

func (r *MemTaskRepo) Create(ctx context.Context, userID string, t dom.Task) (dom.Task, error) {
	if r.CreateErr != nil {
		return dom.Task{}, r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	r.tasks[userID] = append(r.tasks[userID], t)
	return t, nil
}

func (r *MemTaskRepo) Update(ctx context.Context, userID, id string, patch TaskPatch) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.tasks[userID]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if patch.Title != nil {
			list[i].Title = *patch.Title
		}
		if patch.Completed != nil {
			list[i].Completed = *patch.Completed
		}
		if patch.Priority != nil {
			list[i].Priority = *patch.Priority
		}
		if patch.ProjectID != nil {
			list[i].ProjectID = *patch.ProjectID
		}
		if patch.DueAtSet {
			list[i].DueAt = patch.DueAt
		}
		return nil
	}
	return ErrNotFound
}

// Delete is a no-op for an id that is already gone.
func (r *MemTaskRepo) Delete(ctx context.Context, userID, id string) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.tasks[userID]
	for i := range list {
		if list[i].ID == id {
			r.tasks[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemProjectRepo is an in-memory ProjectRepo.
type MemProjectRepo struct {
	mu       sync.Mutex
	projects map[string][]dom.Project

	ListErr   error
	CreateErr error
	DeleteErr error
}

func NewMemProjectRepo() *MemProjectRepo {
	return &MemProjectRepo{projects: make(map[string][]dom.Project)}
}

// List returns the user's projects in insertion order.
func (r *MemProjectRepo) List(ctx context.Context, userID string) ([]dom.Project, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	src := r.projects[userID]
	out := make([]dom.Project, len(src))
	copy(out, src)
	return out, nil
}

func (r *MemProjectRepo) Create(ctx context.Context, userID string, p dom.Project) (dom.Project, error) {
	if r.CreateErr != nil {
		return dom.Project{}, r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	r.projects[userID] = append(r.projects[userID], p)
	return p, nil
}

func (r *MemProjectRepo) Delete(ctx context.Context, userID, id string) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.projects[userID]
	for i := range list {
		if list[i].ID == id {
			r.projects[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemUserRepo is an in-memory UserRepo.
type MemUserRepo struct {
	mu    sync.Mutex
	users map[string]dom.User // keyed by lowercase email
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[string]dom.User)}
}

func (r *MemUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return dom.User{}, ErrNotFound
	}
	return u, nil
}

func (r *MemUserRepo) Create(ctx context.Context, email, displayName, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(email)
	if _, ok := r.users[key]; ok {
		return dom.User{}, ErrEmailExists
	}
	u := dom.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[key] = u
	return u, nil
}
