package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskcollab/internal/adapter/http/mapper"
	"taskcollab/internal/core/ports"
	"taskcollab/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Profile(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	user, err := h.userService.Profile(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, apierrors.MsgFailProfile)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

// ListUsers and UserTasks sit behind the admin guard.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgFailListUsers)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) UserTasks(c *gin.Context) {
	tasks, err := h.userService.UserTasks(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}
