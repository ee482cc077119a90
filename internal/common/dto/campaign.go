package dto

// CreateInvitationRequest invites an email address into the account.
type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// AcceptInvitationRequest carries the invitee's credentials.
type AcceptInvitationRequest struct {
	Password string `json:"password" binding:"required"`
}

// CreateTagRequest represents a tag creation request
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameTagRequest represents a tag rename request
type RenameTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateLinkRequest adds a tracked link to a campaign.
type CreateLinkRequest struct {
	CampaignName string   `json:"campaignName" binding:"required"`
	TargetURL    string   `json:"targetUrl" binding:"required"`
	Tags         []string `json:"tags"`
}

// SetArchivedRequest flips a campaign's archived state.
type SetArchivedRequest struct {
	Archived bool `json:"archived"`
}

// LinkPayload is one link inside a campaign replacement.
type LinkPayload struct {
	TargetURL string   `json:"targetUrl" binding:"required"`
	Tags      []string `json:"tags"`
}

// PagePayload is one landing page inside a campaign replacement.
type PagePayload struct {
	URL string `json:"url" binding:"required"`
}

// ReplaceCampaignRequest swaps a campaign's links and landing pages as one
// edit-save.
type ReplaceCampaignRequest struct {
	Links []LinkPayload `json:"links"`
	Pages []PagePayload `json:"pages"`
}

// CampaignSummary is one row of the grouped campaign listing.
type CampaignSummary struct {
	Name      string `json:"name"`
	LinkCount int    `json:"linkCount"`
	PageCount int    `json:"pageCount"`
	Archived  bool   `json:"archived"`
}
