package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGTaskRepo implements TaskRepo with Postgres. Column names follow the
// remote schema: project_id, due_date, created_at.
type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) List(ctx context.Context, userID string) ([]dom.Task, error) {
	query := `
		SELECT id, title, completed, priority, project_id, due_date, created_at
		FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.Priority,
			&t.ProjectID, &t.DueAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Create(ctx context.Context, userID string, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, completed, priority, project_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, completed, priority, project_id, due_date, created_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query, userID, t.Title, t.Completed, t.Priority, t.ProjectID, t.DueAt).Scan(
		&out.ID, &out.Title, &out.Completed, &out.Priority,
		&out.ProjectID, &out.DueAt, &out.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Task{}, ErrEmptyResult
	}
	if err != nil {
		return dom.Task{}, fmt.Errorf("create task: %w", err)
	}
	return out, nil
}

// Update writes only the fields present in patch.
func (r *PGTaskRepo) Update(ctx context.Context, userID, id string, patch TaskPatch) error {
	if patch.Empty() {
		return nil
	}
	set := make([]string, 0, 5)
	args := []any{id, userID}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Completed != nil {
		add("completed", *patch.Completed)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.ProjectID != nil {
		add("project_id", *patch.ProjectID)
	}
	if patch.DueAtSet {
		add("due_date", patch.DueAt)
	}
	query := "UPDATE tasks SET " + strings.Join(set, ", ") + " WHERE id = $1 AND user_id = $2"
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGTaskRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
