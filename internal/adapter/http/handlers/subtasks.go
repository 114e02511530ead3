package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/adapter/http/mapper"
	"taskcollab/internal/adapter/http/validation"
	"taskcollab/internal/core/ports"
	"taskcollab/pkg/apierrors"
)

type SubTaskHandler struct {
	subTaskService ports.SubTaskService
}

func NewSubTaskHandler(subTaskService ports.SubTaskService) *SubTaskHandler {
	return &SubTaskHandler{subTaskService: subTaskService}
}

func (h *SubTaskHandler) CreateSubTask(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateSubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildCreateSubTaskInput(req)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateSubTask)
		return
	}

	subTask, err := h.subTaskService.CreateSubTask(c.Request.Context(), caller, c.Param("id"), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateSubTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubTaskItem(subTask))
}

func (h *SubTaskHandler) UpdateSubTask(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateSubTaskRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateSubTaskInput(req, raw)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateSubTask)
		return
	}

	subTask, err := h.subTaskService.UpdateSubTask(c.Request.Context(), caller, c.Param("id"), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateSubTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubTaskItem(subTask))
}
