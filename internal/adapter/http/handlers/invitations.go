package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/adapter/http/mapper"
	"taskcollab/internal/adapter/http/middleware"
	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
	"taskcollab/pkg/apierrors"
)

type InvitationHandler struct {
	invitationService ports.InvitationService
}

func NewInvitationHandler(invitationService ports.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

func (h *InvitationHandler) Invite(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	invitation, err := h.invitationService.Invite(c.Request.Context(), caller, c.Param("id"), req.Email)
	if err != nil {
		respondError(c, err, apierrors.MsgFailInvite)
		return
	}

	c.JSON(http.StatusOK, dto.InviteResponse{
		Message:    apierrors.GetTransErrorMsg(apierrors.MsgInvitationSent, middleware.GetLang(c)),
		Invitation: mapper.ToInvitationItem(invitation),
	})
}

func (h *InvitationHandler) Respond(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidInvitationAction, apierrors.MsgFailRespondInvitation)
		return
	}

	invitation, err := h.invitationService.Respond(
		c.Request.Context(), caller, c.Param("invitationId"), domain.InvitationAction(req.Action),
	)
	if err != nil {
		respondError(c, err, apierrors.MsgFailRespondInvitation)
		return
	}

	c.JSON(http.StatusOK, mapper.ToInvitationItem(invitation))
}
