package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/repo"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/store"
)

// sinkRecorder records notifications for assertions.
type sinkRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	severity string
	userID   string
	title    string
}

func (r *sinkRecorder) Success(userID, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{"success", userID, title})
}

func (r *sinkRecorder) Error(userID, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{"error", userID, title})
}

func (r *sinkRecorder) count(severity string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.severity == severity {
			n++
		}
	}
	return n
}

// countingTaskRepo wraps a TaskRepo and counts remote calls.
type countingTaskRepo struct {
	inner repo.TaskRepo
	calls int
}

func (c *countingTaskRepo) List(ctx context.Context, userID string) ([]dom.Task, error) {
	c.calls++
	return c.inner.List(ctx, userID)
}

func (c *countingTaskRepo) Create(ctx context.Context, userID string, t dom.Task) (dom.Task, error) {
	c.calls++
	return c.inner.Create(ctx, userID, t)
}

func (c *countingTaskRepo) Update(ctx context.Context, userID, id string, patch repo.TaskPatch) error {
	c.calls++
	return c.inner.Update(ctx, userID, id, patch)
}

func (c *countingTaskRepo) Delete(ctx context.Context, userID, id string) error {
	c.calls++
	return c.inner.Delete(ctx, userID, id)
}

func newTestStore(t *testing.T, userID string) (*store.Store, *repo.MemTaskRepo, *repo.MemProjectRepo, *sinkRecorder) {
	t.Helper()
	tasks := repo.NewMemTaskRepo()
	projects := repo.NewMemProjectRepo()
	sink := &sinkRecorder{}
	s := store.New(userID, tasks, projects, nil, sink)
	return s, tasks, projects, sink
}

func TestAddTaskAppearsInProjectFilterOnce(t *testing.T) {
	s, _, _, _ := newTestStore(t, "u1")
	s.Load(context.Background())

	created, ok := s.AddTask(context.Background(), dom.Task{
		Title: "Buy milk", Priority: dom.PriorityLow, ProjectID: "3",
	})
	if !ok {
		t.Fatal("AddTask failed")
	}

	matches := 0
	for _, task := range s.TasksByProject("3") {
		if task.ID == created.ID {
			matches++
		}
	}
	if matches != 1 {
		t.Errorf("expected the new task exactly once in its project filter, got %d", matches)
	}
}

func TestAddTaskScenario(t *testing.T) {
	s, _, _, sink := newTestStore(t, "u1")
	s.Load(context.Background())

	created, ok := s.AddTask(context.Background(), dom.Task{
		Title: "Buy milk", Priority: dom.PriorityLow, ProjectID: "3", DueAt: nil,
	})
	if !ok {
		t.Fatal("AddTask failed")
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if created.Completed {
		t.Error("new task must start incomplete")
	}
	tasks := s.Tasks()
	if len(tasks) == 0 || tasks[0].ID != created.ID {
		t.Error("new task must be first in the collection")
	}
	if sink.count("success") != 1 {
		t.Errorf("expected 1 success notification, got %d", sink.count("success"))
	}
}

func TestAddTaskNoUserIssuesNoRemoteCall(t *testing.T) {
	counting := &countingTaskRepo{inner: repo.NewMemTaskRepo()}
	sink := &sinkRecorder{}
	s := store.New("", counting, repo.NewMemProjectRepo(), nil, sink)

	if _, ok := s.AddTask(context.Background(), dom.Task{Title: "nope", Priority: dom.PriorityLow, ProjectID: "1"}); ok {
		t.Error("AddTask with no user must not succeed")
	}
	if counting.calls != 0 {
		t.Errorf("expected no remote call, got %d", counting.calls)
	}
	if len(s.Tasks()) != 0 {
		t.Error("tasks must stay unchanged")
	}
}

func TestAddTaskFailureLeavesStateAndNotifies(t *testing.T) {
	s, tasks, _, sink := newTestStore(t, "u1")
	s.Load(context.Background())
	tasks.CreateErr = errors.New("boom")

	if _, ok := s.AddTask(context.Background(), dom.Task{Title: "x", Priority: dom.PriorityLow, ProjectID: "1"}); ok {
		t.Fatal("expected failure")
	}
	if len(s.Tasks()) != 0 {
		t.Error("tasks must stay unchanged on failure")
	}
	if sink.count("error") != 1 {
		t.Errorf("expected 1 error notification, got %d", sink.count("error"))
	}
}

func TestToggleTwiceRestoresCompleted(t *testing.T) {
	s, _, _, _ := newTestStore(t, "u1")
	s.Load(context.Background())
	created, _ := s.AddTask(context.Background(), dom.Task{Title: "t", Priority: dom.PriorityMedium, ProjectID: "1"})

	if !s.ToggleTaskCompletion(context.Background(), created.ID) {
		t.Fatal("first toggle failed")
	}
	if got, _ := findByID(s.Tasks(), created.ID); !got.Completed {
		t.Error("expected completed after first toggle")
	}
	if !s.ToggleTaskCompletion(context.Background(), created.ID) {
		t.Fatal("second toggle failed")
	}
	if got, _ := findByID(s.Tasks(), created.ID); got.Completed {
		t.Error("expected incomplete after second toggle")
	}
}

func TestToggleUnknownTaskIsNoOp(t *testing.T) {
	counting := &countingTaskRepo{inner: repo.NewMemTaskRepo()}
	sink := &sinkRecorder{}
	s := store.New("u1", counting, repo.NewMemProjectRepo(), nil, sink)
	s.Load(context.Background())
	before := counting.calls

	if s.ToggleTaskCompletion(context.Background(), "missing") {
		t.Error("toggling a task that is not local must be a no-op")
	}
	if counting.calls != before {
		t.Error("no remote update may be issued for an unknown task")
	}
}

func TestUpdateTaskPartialMerge(t *testing.T) {
	s, _, _, _ := newTestStore(t, "u1")
	s.Load(context.Background())
	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created, _ := s.AddTask(context.Background(), dom.Task{
		Title: "write report", Priority: dom.PriorityHigh, ProjectID: "2", DueAt: &due,
	})

	completed := true
	if !s.UpdateTask(context.Background(), created.ID, repo.TaskPatch{Completed: &completed}) {
		t.Fatal("update failed")
	}
	got, ok := findByID(s.Tasks(), created.ID)
	if !ok {
		t.Fatal("task disappeared")
	}
	if !got.Completed {
		t.Error("completed not applied")
	}
	if got.Title != "write report" || got.Priority != dom.PriorityHigh || got.ProjectID != "2" {
		t.Error("partial update must leave other fields unchanged")
	}
	if got.DueAt == nil || !got.DueAt.Equal(due) {
		t.Error("due date must be unchanged")
	}
}

func TestUpdateTaskFailureLeavesState(t *testing.T) {
	s, tasks, _, sink := newTestStore(t, "u1")
	s.Load(context.Background())
	created, _ := s.AddTask(context.Background(), dom.Task{Title: "t", Priority: dom.PriorityLow, ProjectID: "1"})
	tasks.UpdateErr = errors.New("boom")

	completed := true
	if s.UpdateTask(context.Background(), created.ID, repo.TaskPatch{Completed: &completed}) {
		t.Fatal("expected failure")
	}
	got, _ := findByID(s.Tasks(), created.ID)
	if got.Completed {
		t.Error("local state must stay unchanged on remote failure")
	}
	if sink.count("error") != 1 {
		t.Errorf("expected 1 error notification, got %d", sink.count("error"))
	}
}

func TestDeleteTaskRemovesExactlyOneAndRepeatsQuietly(t *testing.T) {
	s, _, _, sink := newTestStore(t, "u1")
	s.Load(context.Background())
	a, _ := s.AddTask(context.Background(), dom.Task{Title: "a", Priority: dom.PriorityLow, ProjectID: "1"})
	s.AddTask(context.Background(), dom.Task{Title: "b", Priority: dom.PriorityLow, ProjectID: "1"})

	if !s.DeleteTask(context.Background(), a.ID) {
		t.Fatal("delete failed")
	}
	if len(s.Tasks()) != 1 {
		t.Fatalf("expected exactly one removal, %d tasks left", len(s.Tasks()))
	}
	// Deleting the same id again is a no-op, not an error.
	if !s.DeleteTask(context.Background(), a.ID) {
		t.Error("repeated delete must resolve cleanly")
	}
	if len(s.Tasks()) != 1 {
		t.Error("repeated delete must not remove anything else")
	}
	if sink.count("error") != 0 {
		t.Error("repeated delete must not produce an error notification")
	}
}

func TestTasksByPriorityPartition(t *testing.T) {
	s, _, _, _ := newTestStore(t, "u1")
	s.Load(context.Background())
	for i, p := range []dom.Priority{
		dom.PriorityLow, dom.PriorityMedium, dom.PriorityHigh,
		dom.PriorityUrgent, dom.PriorityLow, dom.PriorityUrgent,
	} {
		s.AddTask(context.Background(), dom.Task{Title: "t" + string(rune('a'+i)), Priority: p, ProjectID: "1"})
	}

	seen := make(map[string]int)
	total := 0
	for _, p := range dom.Priorities {
		for _, task := range s.TasksByPriority(p) {
			seen[task.ID]++
			total++
		}
	}
	if total != len(s.Tasks()) {
		t.Errorf("partition misses tasks: %d filtered vs %d total", total, len(s.Tasks()))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("task %s appears in %d priority buckets", id, n)
		}
	}
}

func TestLoadBootstrapsProjectsIdempotently(t *testing.T) {
	s, _, projects, _ := newTestStore(t, "u1")
	s.Load(context.Background())

	got := s.Projects()
	if len(got) != 3 {
		t.Fatalf("expected 3 bootstrap projects, got %d", len(got))
	}
	want := map[string]string{"Personal": "#9b87f5", "Work": "#33C3F0", "Shopping": "#F97316"}
	for _, p := range got {
		if want[p.Name] != p.Color {
			t.Errorf("project %s: color %s, want %s", p.Name, p.Color, want[p.Name])
		}
		if p.ID == "" {
			t.Errorf("project %s: missing persisted id", p.Name)
		}
	}

	// A second load for the same user must not duplicate the seed set.
	s2 := store.New("u1", repo.NewMemTaskRepo(), projects, nil, &sinkRecorder{})
	s2.Load(context.Background())
	if len(s2.Projects()) != 3 {
		t.Errorf("re-load duplicated bootstrap projects: %d", len(s2.Projects()))
	}
}

func TestLoadPartialFailureStillResolves(t *testing.T) {
	tasks := repo.NewMemTaskRepo()
	tasks.ListErr = errors.New("boom")
	projects := repo.NewMemProjectRepo()
	sink := &sinkRecorder{}
	s := store.New("u1", tasks, projects, nil, sink)

	s.Load(context.Background())

	if s.Loading() {
		t.Error("load must resolve even when one half fails")
	}
	if len(s.Projects()) != 3 {
		t.Error("the successful half must still replace its collection")
	}
	if sink.count("error") != 1 {
		t.Errorf("expected only the failed half's error, got %d", sink.count("error"))
	}
}

func TestDeleteProjectOrphansTasks(t *testing.T) {
	s, _, _, _ := newTestStore(t, "u1")
	s.Load(context.Background())
	p, _ := s.AddProject(context.Background(), dom.Project{Name: "Garden", Color: "#00FF00"})
	created, _ := s.AddTask(context.Background(), dom.Task{Title: "weed", Priority: dom.PriorityLow, ProjectID: p.ID})

	if !s.DeleteProject(context.Background(), p.ID) {
		t.Fatal("delete project failed")
	}
	if _, ok := s.Project(p.ID); ok {
		t.Error("project must be gone")
	}
	got, ok := findByID(s.Tasks(), created.ID)
	if !ok {
		t.Fatal("orphaned task must remain")
	}
	if got.ProjectID != p.ID {
		t.Error("orphaned task keeps its project id")
	}
}

func TestManagerDropResetsState(t *testing.T) {
	tasks := repo.NewMemTaskRepo()
	projects := repo.NewMemProjectRepo()
	m := store.NewManager(tasks, projects, nil, &sinkRecorder{})

	s := m.Get(context.Background(), "u1")
	s.AddTask(context.Background(), dom.Task{Title: "t", Priority: dom.PriorityLow, ProjectID: "1"})
	if len(s.Tasks()) != 1 {
		t.Fatal("expected one task before drop")
	}

	m.Drop("u1")
	s2 := m.Get(context.Background(), "u1")
	if s2 == s {
		t.Error("drop must discard the store instance")
	}
	// The remote row survives the reset; only view state was dropped.
	if len(s2.Tasks()) != 1 {
		t.Error("next sign-in reloads the persisted tasks")
	}
}

func findByID(tasks []dom.Task, id string) (dom.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return dom.Task{}, false
}
