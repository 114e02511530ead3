package apierrors

const (
	MsgInternalError     = "internalError"
	MsgInvalidPayload    = "invalidPayload"
	MsgRouteNotFound     = "routeNotFound"
	MsgUnauthorized      = "unauthorized"
	MsgInvalidToken      = "invalidToken"
	MsgTokenExpired      = "tokenExpired"
	MsgAdminOnly         = "adminOnly"
	MsgInvalidCredential = "invalidCredentials"

	MsgValidationFailed = "validationFailed"
	MsgForbidden        = "forbidden"
	MsgNotFound         = "notFound"
	MsgConflict         = "conflict"

	MsgUserNotFound         = "userNotFound"
	MsgTaskNotFound         = "taskNotFound"
	MsgSubTaskNotFound      = "subTaskNotFound"
	MsgInvitationNotFound   = "invitationNotFound"
	MsgNotificationNotFound = "notificationNotFound"

	MsgTitleRequired           = "titleRequired"
	MsgInvalidTaskStatus       = "invalidTaskStatus"
	MsgInvalidDueDate          = "invalidDueDate"
	MsgEmailTaken              = "emailTaken"
	MsgNameRequired            = "nameRequired"
	MsgInvalidEmail            = "invalidEmail"
	MsgInvalidPassword         = "invalidPassword"
	MsgSelfInvitation          = "selfInvitation"
	MsgAlreadyMember           = "alreadyMember"
	MsgAssigneeNotMember       = "assigneeNotMember"
	MsgInvalidInvitationAction = "invalidInvitationAction"
	MsgInvitationNotPending    = "invitationNotPending"

	MsgNotTaskManager   = "notTaskManager"
	MsgNotTaskMember    = "notTaskMember"
	MsgNotInvitee       = "notInvitee"
	MsgNotSubTaskEditor = "notSubTaskEditor"

	MsgFailRegister          = "failRegister"
	MsgFailLogin             = "failLogin"
	MsgFailProfile           = "failProfile"
	MsgFailListUsers         = "failListUsers"
	MsgFailListTasks         = "failListTasks"
	MsgFailGetTask           = "failGetTask"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgFailInvite            = "failInvite"
	MsgFailRespondInvitation = "failRespondInvitation"
	MsgFailCreateSubTask     = "failCreateSubTask"
	MsgFailUpdateSubTask     = "failUpdateSubTask"
	MsgFailListNotifications = "failListNotifications"
	MsgFailMarkRead          = "failMarkRead"
	MsgFailUnreadCount       = "failUnreadCount"
)

// Success messages returned in {"message": ...} bodies.
const (
	MsgTaskDeleted    = "taskDeleted"
	MsgInvitationSent = "invitationSent"
)
