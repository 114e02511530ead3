package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskcollab/internal/adapter/http/handlers"
	"taskcollab/internal/adapter/http/middleware"
	"taskcollab/internal/core/ports"
	"taskcollab/pkg/apierrors"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Task         *handlers.TaskHandler
	Invitation   *handlers.InvitationHandler
	SubTask      *handlers.SubTaskHandler
	Notification *handlers.NotificationHandler
}

func RegisterRoutes(r *gin.Engine, verifier ports.TokenVerifier, h Handlers) {
	r.NoRoute(middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, middleware.GetLang(c)),
		)
	})

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/signup", h.Auth.Signup)
		api.POST("/auth/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(verifier))
	{
		authed.GET("/users/profile", h.User.Profile)
		authed.GET("/users", middleware.AdminOnly(), h.User.ListUsers)

		authed.GET("/tasks", h.Task.ListTasks)
		authed.POST("/tasks", h.Task.CreateTask)
		authed.PATCH("/tasks/invitations/:invitationId", h.Invitation.Respond)
		authed.GET("/tasks/:id", h.Task.GetTask)
		authed.PUT("/tasks/:id", h.Task.UpdateTask)
		authed.DELETE("/tasks/:id", h.Task.DeleteTask)
		authed.POST("/tasks/:id/invite", h.Invitation.Invite)
		authed.POST("/tasks/:id/subtasks", h.SubTask.CreateSubTask)

		authed.PATCH("/subtasks/:id", h.SubTask.UpdateSubTask)

		authed.GET("/notifications", h.Notification.ListNotifications)
		authed.GET("/notifications/unread-count", h.Notification.UnreadCount)
		authed.PATCH("/notifications/:id/read", h.Notification.MarkRead)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/users", h.User.ListUsers)
		admin.GET("/users/:userId/tasks", h.User.UserTasks)
	}
}
