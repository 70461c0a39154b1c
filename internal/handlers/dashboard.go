package handlers

import (
	"net/http"
	"time"

	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/auth"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/dto"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/notify"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/store"

	"github.com/gin-gonic/gin"
)

// DashboardHandler renders the filtered dashboard data and the
// notification feed.
type DashboardHandler struct {
	stores *store.Manager
	toasts *notify.Memory
}

func NewDashboardHandler(stores *store.Manager, toasts *notify.Memory) *DashboardHandler {
	return &DashboardHandler{stores: stores, toasts: toasts}
}

// DashboardResponse is the dashboard payload: the selected view, its task
// list and the per-tab counts.
type DashboardResponse struct {
	View     string             `json:"view"`
	Loading  bool               `json:"loading"`
	Tasks    []dto.TaskResponse `json:"tasks"`
	All      int                `json:"all_count"`
	Today    int                `json:"today_count"`
	Upcoming int                `json:"upcoming_count"`
}

// Dashboard godoc
// @Summary      Dashboard view
// @Description  Tasks filtered by view (all|today|upcoming|project-<id>; unknown falls back to all) plus tab counts. Filtering is always local.
// @Tags         dashboard
// @Produce      json
// @Security     CookieAuth
// @Param        view  query  string  false  "Selected view"
// @Success      200  {object}  DashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	s := h.stores.Get(c.Request.Context(), auth.UserIDFromContext(c))
	tasks := s.Tasks()
	now := time.Now()
	view := store.ParseView(c.Query("view"))
	c.JSON(http.StatusOK, DashboardResponse{
		View:     view.String(),
		Loading:  s.Loading(),
		Tasks:    dto.TasksToResponses(store.FilterTasks(tasks, view, now)),
		All:      len(tasks),
		Today:    len(store.FilterTasks(tasks, store.View{Kind: store.ViewToday}, now)),
		Upcoming: len(store.FilterTasks(tasks, store.View{Kind: store.ViewUpcoming}, now)),
	})
}

// Notifications godoc
// @Summary      Recent notifications
// @Description  Outcome toasts for the signed-in user's recent operations, newest first.
// @Tags         dashboard
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  map[string][]notify.Notification
// @Router       /notifications [get]
func (h *DashboardHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.toasts.Recent(auth.UserIDFromContext(c))})
}
