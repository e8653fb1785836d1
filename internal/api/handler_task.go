package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/model"
	"todoapp/internal/service/task"
)

type TaskHandler struct {
	taskService *task.Service
	logger      *zap.Logger
}

func NewTaskHandler(taskService *task.Service, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// List handles GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Task list failed", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
	})
}

// Get handles GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task id"})
		return
	}

	t, err := h.taskService.Get(c.Request.Context(), userID, taskID)
	switch {
	case errors.Is(err, task.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
		return
	case errors.Is(err, task.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "not authorized to view this task"})
		return
	case err != nil:
		h.logger.Error("Task get failed",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("task_id", taskID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    t,
	})
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	t, err := h.taskService.Create(c.Request.Context(), userID, patch)
	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"message": "please provide task title"})
		return
	case err != nil:
		h.logger.Error("Task create failed", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"task":    t,
	})
}

// Update handles PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task id"})
		return
	}

	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	t, err := h.taskService.Update(c.Request.Context(), userID, taskID, patch)
	switch {
	case errors.Is(err, task.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
		return
	case errors.Is(err, task.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "not authorized to update this task"})
		return
	case errors.Is(err, task.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"message": "please provide task title"})
		return
	case err != nil:
		h.logger.Error("Task update failed",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("task_id", taskID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    t,
	})
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task id"})
		return
	}

	err = h.taskService.Delete(c.Request.Context(), userID, taskID)
	switch {
	case errors.Is(err, task.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
		return
	case errors.Is(err, task.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "not authorized to delete this task"})
		return
	case err != nil:
		h.logger.Error("Task delete failed",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("task_id", taskID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "task deleted",
	})
}
