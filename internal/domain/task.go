package domain

import "time"

// Priority is one of four urgency levels. The ordering carries no
// computed behavior; it is a display hint for the client.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every valid priority value.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of the four known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is the core domain entity. ProjectID has no enforced referential
// integrity: deleting a project leaves its tasks orphaned, they just stop
// matching any project filter.
type Task struct {
	ID        string
	Title     string
	Completed bool
	Priority  Priority
	ProjectID string
	DueAt     *time.Time

	CreatedAt time.Time
}

// Project is a named, colored grouping bucket for tasks.
type Project struct {
	ID    string
	Name  string
	Color string
}
