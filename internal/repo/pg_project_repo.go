package repo

import (
	"context"
	"errors"
	"fmt"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGProjectRepo implements ProjectRepo with Postgres.
type PGProjectRepo struct {
	db *pgxpool.Pool
}

func NewPGProjectRepo(db *pgxpool.Pool) *PGProjectRepo {
	return &PGProjectRepo{db: db}
}

func (r *PGProjectRepo) List(ctx context.Context, userID string) ([]dom.Project, error) {
	query := `SELECT id, name, color FROM projects WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []dom.Project
	for rows.Next() {
		var p dom.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PGProjectRepo) Create(ctx context.Context, userID string, p dom.Project) (dom.Project, error) {
	query := `
		INSERT INTO projects (user_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, name, color`
	var out dom.Project
	err := r.db.QueryRow(ctx, query, userID, p.Name, p.Color).Scan(&out.ID, &out.Name, &out.Color)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Project{}, ErrEmptyResult
	}
	if err != nil {
		return dom.Project{}, fmt.Errorf("create project: %w", err)
	}
	return out, nil
}

// Delete removes the project only. Tasks keep their project_id and become
// orphaned; they simply stop matching any project filter.
func (r *PGProjectRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
