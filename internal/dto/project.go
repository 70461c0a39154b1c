package dto

import (
	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
)

type CreateProjectRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=60"`
	Color string `json:"color" binding:"required,hexcolor"`
}

type ProjectResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ListProjectsResponse struct {
	Items []ProjectResponse `json:"items"`
}

// ProjectToResponse maps a domain project to its wire shape.
func ProjectToResponse(p dom.Project) ProjectResponse {
	return ProjectResponse{ID: p.ID, Name: p.Name, Color: p.Color}
}

// ProjectsToResponses maps a project slice to wire shapes.
func ProjectsToResponses(list []dom.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProjectToResponse(p))
	}
	return out
}
