package repo

import (
	"context"
	"errors"
	"time"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrNotFound means the row does not exist (or belongs to another user).
	ErrNotFound = errors.New("not found")
	// ErrEmptyResult means an insert reported success but returned no row.
	ErrEmptyResult = errors.New("no row returned after insert")
	// ErrEmailExists means a user with that email is already registered.
	ErrEmailExists = errors.New("email already registered")
)

// IsNoRows reports whether err is the "no matching rows" condition, as
// opposed to a general remote failure. The bootstrap policy depends on
// telling the two apart.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNotFound)
}

// TaskPatch is a partial task update. Only non-nil fields are written.
// DueAt applies only when DueAtSet is true; a nil DueAt with DueAtSet
// clears the due date.
type TaskPatch struct {
	Title     *string
	Completed *bool
	Priority  *dom.Priority
	ProjectID *string
	DueAt     *time.Time
	DueAtSet  bool
}

// Empty reports whether the patch writes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Completed == nil && p.Priority == nil &&
		p.ProjectID == nil && !p.DueAtSet
}

// TaskRepo provides task persistence, scoped by owning user.
type TaskRepo interface {
	List(ctx context.Context, userID string) ([]dom.Task, error)
	Create(ctx context.Context, userID string, t dom.Task) (dom.Task, error)
	Update(ctx context.Context, userID, id string, patch TaskPatch) error
	Delete(ctx context.Context, userID, id string) error
}

// ProjectRepo provides project persistence, scoped by owning user.
type ProjectRepo interface {
	List(ctx context.Context, userID string) ([]dom.Project, error)
	Create(ctx context.Context, userID string, p dom.Project) (dom.Project, error)
	Delete(ctx context.Context, userID, id string) error
}

// UserRepo provides user account persistence.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	Create(ctx context.Context, email, displayName, passwordHash string) (dom.User, error)
}
