package handlers

import (
	"net/http"

	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/auth"
	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/dto"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/store"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves the project surface.
type ProjectHandler struct {
	stores *store.Manager
}

func NewProjectHandler(stores *store.Manager) *ProjectHandler {
	return &ProjectHandler{stores: stores}
}

func (h *ProjectHandler) session(c *gin.Context) *store.Store {
	return h.stores.Get(c.Request.Context(), auth.UserIDFromContext(c))
}

// List godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListProjectsResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListProjectsResponse{Items: dto.ProjectsToResponses(h.session(c).Projects())})
}

// Get godoc
// @Summary      Get a project by ID
// @Tags         projects
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	p, ok := h.session(c).Project(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ProjectToResponse(p))
}

// Create godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateProjectRequest  true  "Project body"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, ok := h.session(c).AddProject(c.Request.Context(), dom.Project{Name: req.Name, Color: req.Color})
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "the project could not be saved"})
		return
	}
	c.JSON(http.StatusCreated, dto.ProjectToResponse(created))
}

// Delete godoc
// @Summary      Delete a project
// @Description  Tasks assigned to the project are kept and become orphaned.
// @Tags         projects
// @Security     CookieAuth
// @Param        id   path  string  true  "Project ID"
// @Success      204
// @Failure      502  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if !h.session(c).DeleteProject(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "the project could not be deleted"})
		return
	}
	c.Status(http.StatusNoContent)
}
