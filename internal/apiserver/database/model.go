package database

import (
	"time"

	"github.com/campaignhub/campaignhub/internal/authz"
)

// AccountStatus represents the lifecycle state of an account
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
	AccountCancelled AccountStatus = "cancelled"
)

// Account is the tenant boundary; every resource belongs to exactly one.
type Account struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string        `json:"name" gorm:"type:varchar(100);uniqueIndex"`
	Status        AccountStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	PricingPlanID string        `json:"pricingPlanId" gorm:"type:varchar(36)"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// User belongs to exactly one account. The first user of a new account is
// always a SuperAdmin; invited users take the role from the invitation.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountID string     `json:"accountId" gorm:"type:varchar(36);not null;index"`
	Email     string     `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt hash, never exposed
	Role      authz.Role `json:"role" gorm:"type:varchar(20);not null"`
	InvitedBy string     `json:"invitedBy,omitempty" gorm:"type:varchar(36)"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Member converts the stored row into the identity the guards reason about.
func (u *User) Member() authz.Member {
	return authz.Member{ID: u.ID, AccountID: u.AccountID, Role: u.Role}
}

// InvitationStatus represents the state of an invitation
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
)

// Invitation converts, while pending and unexpired, into account membership
// at a fixed role. Accepted and Expired are terminal.
type Invitation struct {
	ID        string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountID string           `json:"accountId" gorm:"type:varchar(36);not null;index"`
	Email     string           `json:"email" gorm:"type:varchar(255);not null;index"`
	Role      authz.Role       `json:"role" gorm:"type:varchar(20);not null"`
	Token     string           `json:"-" gorm:"type:varchar(64);not null;uniqueIndex"`
	Status    InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ExpiresAt time.Time        `json:"expiresAt"`
	InvitedBy string           `json:"invitedBy" gorm:"type:varchar(36);not null"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Tag names are unique per account. UtmLink rows reference tags by name, so
// renaming or deleting a tag cascades through every link in the account.
type Tag struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountID string    `json:"accountId" gorm:"type:varchar(36);not null;uniqueIndex:uk_tags_account_name"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:uk_tags_account_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UtmLink is a tracked link within a campaign. Tags is denormalized as a
// string array, not a foreign key.
type UtmLink struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountID    string    `json:"accountId" gorm:"type:varchar(36);not null;index"`
	UserID       string    `json:"userId" gorm:"type:varchar(36);not null"`
	CampaignName string    `json:"campaignName" gorm:"type:varchar(255);not null;index"`
	TargetURL    string    `json:"targetUrl" gorm:"type:text"`
	Tags         []string  `json:"tags" gorm:"type:text;serializer:json"`
	IsArchived   bool      `json:"isArchived" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CampaignLandingPage is a landing page attached to a campaign.
type CampaignLandingPage struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountID    string    `json:"accountId" gorm:"type:varchar(36);not null;index"`
	UserID       string    `json:"userId" gorm:"type:varchar(36);not null"`
	CampaignName string    `json:"campaignName" gorm:"type:varchar(255);not null;index"`
	URL          string    `json:"url" gorm:"type:text"`
	IsArchived   bool      `json:"isArchived" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
