package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/repo"
)

// DueDate parses due_date from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC. Null or empty
// means no due date.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339, // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// Date-only input means start of that day in UTC.
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in the store and repos.
func (d DueDate) Ptr() *time.Time { return d.t }

type CreateTaskRequest struct {
	Title     string  `json:"title" binding:"required,min=1,max=120"`
	Priority  string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ProjectID string  `json:"project_id" binding:"required"`
	DueDate   DueDate `json:"due_date"` // optional: "2026-02-19" or RFC3339
}

// Draft builds the domain task for the store. Priority defaults to medium,
// completed starts false.
func (r CreateTaskRequest) Draft() dom.Task {
	p := dom.Priority(r.Priority)
	if p == "" {
		p = dom.PriorityMedium
	}
	return dom.Task{
		Title:     strings.TrimSpace(r.Title),
		Completed: false,
		Priority:  p,
		ProjectID: r.ProjectID,
		DueAt:     r.DueDate.Ptr(),
	}
}

type UpdateTaskRequest struct {
	Title     *string  `json:"title" binding:"omitempty,min=1,max=120"`
	Completed *bool    `json:"completed"`
	Priority  *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ProjectID *string  `json:"project_id" binding:"omitempty,min=1"`
	DueDate   *DueDate `json:"due_date"` // absent = keep, "" = clear, value = set
}

// Patch converts the request to a field-level repo patch.
func (r UpdateTaskRequest) Patch() repo.TaskPatch {
	p := repo.TaskPatch{
		Completed: r.Completed,
		ProjectID: r.ProjectID,
	}
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		p.Title = &t
	}
	if r.Priority != nil {
		v := dom.Priority(*r.Priority)
		p.Priority = &v
	}
	if r.DueDate != nil {
		p.DueAt = r.DueDate.Ptr()
		p.DueAtSet = true
	}
	return p
}

type TaskResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Priority  string     `json:"priority"`
	ProjectID string     `json:"project_id"`
	DueDate   *time.Time `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}

// TaskToResponse maps a domain task to its wire shape.
func TaskToResponse(t dom.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  string(t.Priority),
		ProjectID: t.ProjectID,
		DueDate:   t.DueAt,
		CreatedAt: t.CreatedAt,
	}
}

// TasksToResponses maps a task slice to wire shapes.
func TasksToResponses(list []dom.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, TaskToResponse(t))
	}
	return out
}
