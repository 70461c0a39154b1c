package handlers

import (
	"net/http"
	"time"

	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/auth"
	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/dto"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/store"

	"github.com/gin-gonic/gin"
)

// TaskHandler serves the task CRUD surface on top of the session store.
type TaskHandler struct {
	stores *store.Manager
}

func NewTaskHandler(stores *store.Manager) *TaskHandler {
	return &TaskHandler{stores: stores}
}

func (h *TaskHandler) session(c *gin.Context) *store.Store {
	return h.stores.Get(c.Request.Context(), auth.UserIDFromContext(c))
}

// List godoc
// @Summary      List tasks
// @Description  Optional view (all|today|upcoming|project-<id>) and priority filters, applied locally.
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        view      query  string  false  "Dashboard view"
// @Param        priority  query  string  false  "Priority filter"  Enums(low, medium, high, urgent)
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      400  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	s := h.session(c)
	var list []dom.Task
	if p := c.Query("priority"); p != "" {
		if !dom.Priority(p).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be one of low, medium, high, urgent"})
			return
		}
		list = s.TasksByPriority(dom.Priority(p))
	} else {
		list = s.Tasks()
	}
	view := store.ParseView(c.Query("view"))
	list = store.FilterTasks(list, view, time.Now())
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: dto.TasksToResponses(list)})
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, ok := h.session(c).AddTask(c.Request.Context(), req.Draft())
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "the task could not be saved"})
		return
	}
	c.JSON(http.StatusCreated, dto.TaskToResponse(created))
}

// Update godoc
// @Summary      Update a task
// @Description  Only the fields present in the body are changed.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.session(c).UpdateTask(c.Request.Context(), c.Param("id"), req.Patch()) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "the change could not be saved"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Delete a task
// @Description  Deleting an id that is already gone is a no-op.
// @Tags         tasks
// @Security     CookieAuth
// @Param        id   path  string  true  "Task ID"
// @Success      204
// @Failure      502  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if !h.session(c).DeleteTask(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "the task could not be deleted"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary      Toggle task completion
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/toggle [post]
func (h *TaskHandler) Toggle(c *gin.Context) {
	s := h.session(c)
	id := c.Param("id")
	if _, found := findTask(s.Tasks(), id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if !s.ToggleTaskCompletion(c.Request.Context(), id) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "the change could not be saved"})
		return
	}
	c.Status(http.StatusNoContent)
}

func findTask(tasks []dom.Task, id string) (dom.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return dom.Task{}, false
}
