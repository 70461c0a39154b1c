package repo

import (
	"context"
	"fmt"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
)

// EnsureDefaultProjects makes sure the user has at least the bootstrap
// project set. If the user's project list is empty (first sign-in), the
// three defaults are inserted and the list re-read. Idempotent: a user who
// already has projects is returned as-is, nothing is inserted.
func EnsureDefaultProjects(ctx context.Context, repo ProjectRepo, userID string) ([]dom.Project, error) {
	list, err := repo.List(ctx, userID)
	if err != nil && !IsNoRows(err) {
		return nil, err
	}
	if len(list) > 0 {
		return list, nil
	}
	for _, p := range dom.DefaultProjects() {
		if _, err := repo.Create(ctx, userID, dom.Project{Name: p.Name, Color: p.Color}); err != nil {
			return nil, fmt.Errorf("seed project %q: %w", p.Name, err)
		}
	}
	return repo.List(ctx, userID)
}
