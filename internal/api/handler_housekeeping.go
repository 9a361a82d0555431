package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/notification"
	"hotel-frontoffice-backend/internal/store"
)

type createTaskRequest struct {
	RoomID   uint   `json:"room_id" binding:"required"`
	Kind     string `json:"kind" binding:"required,oneof=cleaning inspection maintenance turndown"`
	Priority int    `json:"priority" binding:"gte=0,lte=5"`
	Assignee string `json:"assignee"`
	Notes    string `json:"notes"`
}

// CreateTask handles POST /api/housekeeping/tasks.
func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	task := model.HousekeepingTask{
		RoomID:   req.RoomID,
		Kind:     req.Kind,
		Priority: req.Priority,
		Assignee: req.Assignee,
		Notes:    req.Notes,
	}
	if err := h.store.CreateTask(c.Request.Context(), &task); err != nil {
		respondError(c, err)
		return
	}

	h.notify(notification.TaskAlert(task, "New housekeeping task"))
	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /api/housekeeping/tasks.
func (h *Handler) ListTasks(c *gin.Context) {
	f := store.TaskFilter{Status: c.Query("status"), Assignee: c.Query("assignee")}
	if raw := c.Query("room_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
			return
		}
		f.RoomID = uint(id)
	}

	tasks, err := h.store.ListTasks(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

type updateTaskRequest struct {
	Status   *string `json:"status" binding:"omitempty,oneof=pending in_progress done"`
	Assignee *string `json:"assignee"`
	Priority *int    `json:"priority" binding:"omitempty,gte=0,lte=5"`
	Notes    *string `json:"notes"`
}

// UpdateTask handles PATCH /api/housekeeping/tasks/:id.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	task, err := h.store.UpdateTask(c.Request.Context(), id, store.TaskUpdate{
		Status:   req.Status,
		Assignee: req.Assignee,
		Priority: req.Priority,
		Notes:    req.Notes,
	}, h.now())
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Assignee != nil && *req.Assignee != "" && task.Status != model.TaskDone {
		h.notify(notification.TaskAlert(task, "Task assigned"))
	}
	c.JSON(http.StatusOK, task)
}
