package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/adapter/http/mapper"
	"taskcollab/internal/adapter/http/middleware"
	"taskcollab/internal/adapter/http/validation"
	"taskcollab/internal/core/ports"
	"taskcollab/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), caller, validation.BuildCreateTaskInput(req))
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), caller, c.Param("id"), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskDeleted, middleware.GetLang(c)),
	})
}
