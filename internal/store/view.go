package store

import (
	"strings"
	"time"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
)

// ViewKind selects a dashboard filter.
type ViewKind string

const (
	ViewAll      ViewKind = "all"
	ViewToday    ViewKind = "today"
	ViewUpcoming ViewKind = "upcoming"
	ViewProject  ViewKind = "project"
)

// View is a parsed dashboard selection.
type View struct {
	Kind      ViewKind
	ProjectID string
}

const projectViewPrefix = "project-"

// ParseView maps a navigation fragment to a view. Recognized values are
// "all", "today", "upcoming" and "project-<id>"; anything else falls back
// to all.
func ParseView(fragment string) View {
	switch fragment {
	case "", string(ViewAll):
		return View{Kind: ViewAll}
	case string(ViewToday):
		return View{Kind: ViewToday}
	case string(ViewUpcoming):
		return View{Kind: ViewUpcoming}
	}
	if id, ok := strings.CutPrefix(fragment, projectViewPrefix); ok && id != "" {
		return View{Kind: ViewProject, ProjectID: id}
	}
	return View{Kind: ViewAll}
}

// String renders the view back as a fragment.
func (v View) String() string {
	if v.Kind == ViewProject {
		return projectViewPrefix + v.ProjectID
	}
	return string(v.Kind)
}

// FilterTasks derives the view's task subsequence. Pure and local: no
// remote calls, the input slice is not modified. Due dates are compared at
// calendar-day granularity in now's location: today means the due day
// equals the current day, upcoming means strictly after today and at most
// 7 days out.
func FilterTasks(tasks []dom.Task, v View, now time.Time) []dom.Task {
	switch v.Kind {
	case ViewToday:
		today := startOfDay(now)
		return filter(tasks, func(t dom.Task) bool {
			return t.DueAt != nil && startOfDay(t.DueAt.In(now.Location())).Equal(today)
		})
	case ViewUpcoming:
		today := startOfDay(now)
		nextWeek := today.AddDate(0, 0, 7)
		return filter(tasks, func(t dom.Task) bool {
			if t.DueAt == nil {
				return false
			}
			due := startOfDay(t.DueAt.In(now.Location()))
			return due.After(today) && !due.After(nextWeek)
		})
	case ViewProject:
		return filter(tasks, func(t dom.Task) bool { return t.ProjectID == v.ProjectID })
	default:
		out := make([]dom.Task, len(tasks))
		copy(out, tasks)
		return out
	}
}

func filter(tasks []dom.Task, keep func(dom.Task) bool) []dom.Task {
	out := make([]dom.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
