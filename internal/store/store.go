// Package store holds the per-user session state: the in-memory task and
// project collections mirrored from the repos. Views read from here;
// mutations go remote first and touch local state only after success, so a
// failed call never leaves the collections half-updated.
package store

import (
	"context"
	"log"
	"sync"

	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/cache"
	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/notify"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/repo"

	"golang.org/x/sync/singleflight"
)

// Store is the session state for one signed-in user. Created on sign-in,
// dropped on sign-out. All operations are safe for concurrent use; local
// mutations are atomic under one mutex. Two rapid remote updates on the
// same task can still complete out of order at the repo (last write wins);
// that is accepted, not guarded against.
type Store struct {
	mu       sync.Mutex
	userID   string
	tasks    []dom.Task
	projects []dom.Project
	loading  bool

	taskRepo    repo.TaskRepo
	projectRepo repo.ProjectRepo
	cache       *cache.TaskCache // nil disables caching
	sink        notify.Sink
	sf          singleflight.Group
}

// New creates an empty store for the user. Call Load to populate it.
func New(userID string, tasks repo.TaskRepo, projects repo.ProjectRepo, c *cache.TaskCache, sink notify.Sink) *Store {
	return &Store{
		userID:      userID,
		taskRepo:    tasks,
		projectRepo: projects,
		cache:       c,
		sink:        sink,
		projects:    dom.DefaultProjects(),
	}
}

// Load fetches the task and project lists concurrently, applying the
// bootstrap policy for projects. A partial failure still resolves the load:
// the successful half replaces its collection, the failed half is surfaced
// as an error notification and the last-known collection stays.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var (
		wg       sync.WaitGroup
		tasks    []dom.Task
		projects []dom.Project
		taskErr  error
		projErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		tasks, taskErr = s.loadTasks(ctx)
	}()
	go func() {
		defer wg.Done()
		projects, projErr = repo.EnsureDefaultProjects(ctx, s.projectRepo, s.userID)
	}()
	wg.Wait()

	s.mu.Lock()
	if taskErr == nil {
		s.tasks = tasks
	}
	if projErr == nil {
		s.projects = projects
	}
	s.loading = false
	s.mu.Unlock()

	if taskErr != nil {
		log.Printf("store: load tasks for user %s: %v", s.userID, taskErr)
		s.sink.Error(s.userID, "Failed to load tasks", "Your tasks could not be loaded. Please try again.")
	}
	if projErr != nil {
		log.Printf("store: load projects for user %s: %v", s.userID, projErr)
		s.sink.Error(s.userID, "Failed to load projects", "Your projects could not be loaded. Please try again.")
	}
}

func (s *Store) loadTasks(ctx context.Context) ([]dom.Task, error) {
	if s.cache == nil {
		return s.taskRepo.List(ctx, s.userID)
	}
	v, err, _ := s.sf.Do("list:"+s.userID, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, s.userID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.taskRepo.List(ctx, s.userID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, s.userID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Task), nil
}

// AddTask persists the draft and, on success, prepends the returned record
// to the task list. Never returns an error; the outcome lands in the
// notification sink, the ok flag only tells the caller what to render.
// A no-op when the store has no user.
func (s *Store) AddTask(ctx context.Context, draft dom.Task) (dom.Task, bool) {
	if s.userID == "" {
		return dom.Task{}, false
	}
	created, err := s.taskRepo.Create(ctx, s.userID, draft)
	if err != nil {
		log.Printf("store: add task for user %s: %v", s.userID, err)
		s.sink.Error(s.userID, "Failed to create task", "The task could not be saved. Please try again.")
		return dom.Task{}, false
	}
	s.mu.Lock()
	s.tasks = append([]dom.Task{created}, s.tasks...)
	s.mu.Unlock()
	s.invalidateCache(ctx)
	s.sink.Success(s.userID, "Task created", `"`+created.Title+`" has been added to your tasks.`)
	return created, true
}

// UpdateTask sends only the fields present in patch and, on success, merges
// them into the matching local record. Local state is untouched on failure.
func (s *Store) UpdateTask(ctx context.Context, id string, patch repo.TaskPatch) bool {
	if s.userID == "" {
		return false
	}
	if err := s.taskRepo.Update(ctx, s.userID, id, patch); err != nil {
		log.Printf("store: update task %s for user %s: %v", id, s.userID, err)
		s.sink.Error(s.userID, "Failed to update task", "The change could not be saved. Please try again.")
		return false
	}
	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.tasks[i].Title = *patch.Title
		}
		if patch.Completed != nil {
			s.tasks[i].Completed = *patch.Completed
		}
		if patch.Priority != nil {
			s.tasks[i].Priority = *patch.Priority
		}
		if patch.ProjectID != nil {
			s.tasks[i].ProjectID = *patch.ProjectID
		}
		if patch.DueAtSet {
			s.tasks[i].DueAt = patch.DueAt
		}
		break
	}
	s.mu.Unlock()
	s.invalidateCache(ctx)
	return true
}

// DeleteTask removes the task remotely, then locally. Deleting an id that
// is already gone stays quiet toward the caller; only the toast differs.
func (s *Store) DeleteTask(ctx context.Context, id string) bool {
	if s.userID == "" {
		return false
	}
	title, found := s.taskTitle(id)
	if err := s.taskRepo.Delete(ctx, s.userID, id); err != nil {
		log.Printf("store: delete task %s for user %s: %v", id, s.userID, err)
		s.sink.Error(s.userID, "Failed to delete task", "The task could not be deleted. Please try again.")
		return false
	}
	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.invalidateCache(ctx)
	if found {
		s.sink.Success(s.userID, "Task deleted", `"`+title+`" has been removed.`)
	}
	return true
}

// ToggleTaskCompletion flips completed from the current local value. A
// no-op when the task is not in the local collection.
func (s *Store) ToggleTaskCompletion(ctx context.Context, id string) bool {
	if s.userID == "" {
		return false
	}
	s.mu.Lock()
	var flipped *bool
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			v := !s.tasks[i].Completed
			flipped = &v
			break
		}
	}
	s.mu.Unlock()
	if flipped == nil {
		return false
	}
	return s.UpdateTask(ctx, id, repo.TaskPatch{Completed: flipped})
}

// AddProject persists the draft and appends the returned record.
func (s *Store) AddProject(ctx context.Context, draft dom.Project) (dom.Project, bool) {
	if s.userID == "" {
		return dom.Project{}, false
	}
	created, err := s.projectRepo.Create(ctx, s.userID, draft)
	if err != nil {
		log.Printf("store: add project for user %s: %v", s.userID, err)
		s.sink.Error(s.userID, "Failed to create project", "The project could not be saved. Please try again.")
		return dom.Project{}, false
	}
	s.mu.Lock()
	s.projects = append(s.projects, created)
	s.mu.Unlock()
	s.sink.Success(s.userID, "Project created", `"`+created.Name+`" has been added to your projects.`)
	return created, true
}

// DeleteProject removes the project remotely, then locally. Tasks that
// referenced it are left alone and become orphaned.
func (s *Store) DeleteProject(ctx context.Context, id string) bool {
	if s.userID == "" {
		return false
	}
	var name string
	var found bool
	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			name, found = s.projects[i].Name, true
			break
		}
	}
	s.mu.Unlock()
	if err := s.projectRepo.Delete(ctx, s.userID, id); err != nil {
		log.Printf("store: delete project %s for user %s: %v", id, s.userID, err)
		s.sink.Error(s.userID, "Failed to delete project", "The project could not be deleted. Please try again.")
		return false
	}
	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i:i], s.projects[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.sink.Success(s.userID, "Project deleted", `"`+name+`" has been removed.`)
	}
	return true
}

// Tasks returns a snapshot of the task collection, newest first.
func (s *Store) Tasks() []dom.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dom.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Projects returns a snapshot of the project collection.
func (s *Store) Projects() []dom.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dom.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// TasksByProject returns the tasks belonging to the given project.
func (s *Store) TasksByProject(projectID string) []dom.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []dom.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// TasksByPriority returns the tasks at the given priority.
func (s *Store) TasksByPriority(p dom.Priority) []dom.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []dom.Task
	for _, t := range s.tasks {
		if t.Priority == p {
			out = append(out, t)
		}
	}
	return out
}

// Project returns the project with the given id, if present.
func (s *Store) Project(id string) (dom.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return dom.Project{}, false
}

// Loading reports whether the initial load is still in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// UserID returns the owning user.
func (s *Store) UserID() string { return s.userID }

func (s *Store) taskTitle(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t.Title, true
		}
	}
	return "", false
}

func (s *Store) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, s.userID)
	}
}
