package i18n

// Common errors
var (
	ErrNotFound       = NewErrorWithCode("ErrorResourceNotFound", ErrorNotFound)
	ErrUnauthorized   = NewErrorWithCode("ErrorUnauthorized", ErrorUnauthorized)
	ErrForbidden      = NewErrorWithCode("ErrorForbidden", ErrorForbidden)
	ErrBadRequest     = NewErrorWithCode("ErrorBadRequest", ErrorBadRequest)
	ErrInternalServer = NewErrorWithCode("ErrorInternalServer", ErrorInternalServer)
)

// Account related errors
var (
	ErrorAccountNotFound  = NewErrorWithCode("ErrorAccountNotFound", ErrorNotFound)
	ErrorAccountMismatch  = NewErrorWithCode("ErrorAccountMismatch", ErrorForbidden)
	ErrorAccountSuspended = NewErrorWithCode("ErrorAccountSuspended", ErrorForbidden)
	ErrorAccountNameTaken = NewErrorWithCode("ErrorAccountNameTaken", ErrorConflict)
)

// User and authorization related errors
var (
	ErrorUserNotFound         = NewErrorWithCode("ErrorUserNotFound", ErrorNotFound)
	ErrorInvalidCredentials   = NewErrorWithCode("ErrorInvalidCredentials", ErrorUnauthorized)
	ErrorEmailExists          = NewErrorWithCode("ErrorEmailExists", ErrorConflict)
	ErrorInvalidRole          = NewErrorWithCode("ErrorInvalidRole", ErrorBadRequest)
	ErrorPermissionDenied     = NewErrorWithCode("ErrorPermissionDenied", ErrorForbidden)
	ErrorCannotManageUser     = NewErrorWithCode("ErrorCannotManageUser", ErrorForbidden)
	ErrorCannotChangeRole     = NewErrorWithCode("ErrorCannotChangeRole", ErrorForbidden)
	ErrorLastSuperAdmin       = NewErrorWithCode("ErrorLastSuperAdmin", ErrorConflict)
	ErrorInvalidOldPassword   = NewErrorWithCode("ErrorInvalidOldPassword", ErrorForbidden)
	ErrorEmailPasswordMissing = NewErrorWithCode("ErrorEmailPasswordMissing", ErrorBadRequest)
)

// Invitation related errors
var (
	ErrorInvitationNotFound  = NewErrorWithCode("ErrorInvitationNotFound", ErrorNotFound)
	ErrorInvitationConsumed  = NewErrorWithCode("ErrorInvitationConsumed", ErrorConflict)
	ErrorInvitationExpired   = NewErrorWithCode("ErrorInvitationExpired", ErrorGone)
	ErrorInvitationRoleLimit = NewErrorWithCode("ErrorInvitationRoleLimit", ErrorForbidden)
	ErrorInvalidEmail        = NewErrorWithCode("ErrorInvalidEmail", ErrorBadRequest)
)

// Tag related errors
var (
	ErrorTagNotFound     = NewErrorWithCode("ErrorTagNotFound", ErrorNotFound)
	ErrorTagNameRequired = NewErrorWithCode("ErrorTagNameRequired", ErrorBadRequest)
	ErrorTagNameTooLong  = NewErrorWithCode("ErrorTagNameTooLong", ErrorBadRequest)
	ErrorTagNameExists   = NewErrorWithCode("ErrorTagNameExists", ErrorConflict)
	ErrorUnknownTag      = NewErrorWithCode("ErrorUnknownTag", ErrorBadRequest)
)

// Campaign related errors
var (
	ErrorCampaignNotFound     = NewErrorWithCode("ErrorCampaignNotFound", ErrorNotFound)
	ErrorCampaignNameRequired = NewErrorWithCode("ErrorCampaignNameRequired", ErrorBadRequest)
	ErrorLinkNotFound         = NewErrorWithCode("ErrorLinkNotFound", ErrorNotFound)
	ErrorFeatureDisabled      = NewErrorWithCode("ErrorFeatureDisabled", ErrorForbidden)
)

// Account related success messages
const (
	SuccessSignup          = "SuccessSignup"
	SuccessAccountInfo     = "SuccessAccountInfo"
	SuccessAccountSettings = "SuccessAccountSettings"
)

// User related success messages
const (
	SuccessLogin           = "SuccessLogin"
	SuccessPasswordChanged = "SuccessPasswordChanged"
	SuccessUserInfo        = "SuccessUserInfo"
	SuccessUserList        = "SuccessUserList"
	SuccessUserRoleChanged = "SuccessUserRoleChanged"
	SuccessUserDeleted     = "SuccessUserDeleted"
)

// Invitation related success messages
const (
	SuccessInvitationCreated  = "SuccessInvitationCreated"
	SuccessInvitationInfo     = "SuccessInvitationInfo"
	SuccessInvitationAccepted = "SuccessInvitationAccepted"
)

// Tag related success messages
const (
	SuccessTagCreated = "SuccessTagCreated"
	SuccessTagRenamed = "SuccessTagRenamed"
	SuccessTagDeleted = "SuccessTagDeleted"
	SuccessTagList    = "SuccessTagList"
)

// Campaign related success messages
const (
	SuccessLinkCreated     = "SuccessLinkCreated"
	SuccessLinkList        = "SuccessLinkList"
	SuccessCampaignList    = "SuccessCampaignList"
	SuccessCampaignUpdated = "SuccessCampaignUpdated"
	SuccessCampaignDeleted = "SuccessCampaignDeleted"
)
