package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskcollab/internal/adapter/http/middleware"
	"taskcollab/internal/adapter/http/validation"
	"taskcollab/internal/core/domain"
	"taskcollab/pkg/apierrors"
)

// errorMessages maps domain sentinels to their translation keys. The first
// match wins.
var errorMessages = []struct {
	err    error
	msgKey string
}{
	{domain.ErrUserNotFound, apierrors.MsgUserNotFound},
	{domain.ErrTaskNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrSubTaskNotFound, apierrors.MsgSubTaskNotFound},
	{domain.ErrInvitationNotFound, apierrors.MsgInvitationNotFound},
	{domain.ErrNotificationNotFound, apierrors.MsgNotificationNotFound},

	{domain.ErrTitleRequired, apierrors.MsgTitleRequired},
	{domain.ErrInvalidTaskStatus, apierrors.MsgInvalidTaskStatus},
	{domain.ErrInvalidDueDate, apierrors.MsgInvalidDueDate},
	{domain.ErrEmailTaken, apierrors.MsgEmailTaken},
	{domain.ErrNameRequired, apierrors.MsgNameRequired},
	{domain.ErrInvalidEmail, apierrors.MsgInvalidEmail},
	{domain.ErrInvalidPassword, apierrors.MsgInvalidPassword},
	{domain.ErrSelfInvitation, apierrors.MsgSelfInvitation},
	{domain.ErrAlreadyMember, apierrors.MsgAlreadyMember},
	{domain.ErrAssigneeNotMember, apierrors.MsgAssigneeNotMember},
	{domain.ErrInvalidInvitationAction, apierrors.MsgInvalidInvitationAction},

	{domain.ErrNotTaskManager, apierrors.MsgNotTaskManager},
	{domain.ErrNotTaskMember, apierrors.MsgNotTaskMember},
	{domain.ErrNotInvitee, apierrors.MsgNotInvitee},
	{domain.ErrNotSubTaskEditor, apierrors.MsgNotSubTaskEditor},

	{domain.ErrInvalidCredentials, apierrors.MsgInvalidCredential},
	{validation.ErrInvalidPayload, apierrors.MsgInvalidPayload},

	{domain.ErrValidation, apierrors.MsgValidationFailed},
	{domain.ErrForbidden, apierrors.MsgForbidden},
	{domain.ErrNotFound, apierrors.MsgNotFound},
	{domain.ErrConflict, apierrors.MsgConflict},
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, validation.ErrInvalidPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the translated envelope for err. Errors outside the
// domain taxonomy are logged and reported with fallbackKey.
func respondError(c *gin.Context, err error, fallbackKey string) {
	lang := middleware.GetLang(c)

	var stateErr *domain.InvitationStateError
	if errors.As(err, &stateErr) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateErrorWithData(http.StatusBadRequest, apierrors.MsgInvitationNotPending, lang, map[string]any{
				"Status": strings.ToLower(string(stateErr.Status)),
			}),
		)
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		apiErr := apierrors.CreateError(status, fallbackKey, lang)
		if gin.Mode() != gin.ReleaseMode {
			apiErr = apiErr.WithDebug(err.Error())
		}
		c.JSON(status, apiErr)
		return
	}

	for _, entry := range errorMessages {
		if errors.Is(err, entry.err) {
			c.JSON(status, apierrors.CreateError(status, entry.msgKey, lang))
			return
		}
	}
	c.JSON(status, apierrors.CreateError(status, fallbackKey, lang))
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, middleware.GetLang(c)),
	)
}

// callerOrAbort reads the authenticated caller. Routes behind the auth
// middleware always have one.
func callerOrAbort(c *gin.Context) (domain.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, middleware.GetLang(c)),
		)
	}
	return caller, ok
}
