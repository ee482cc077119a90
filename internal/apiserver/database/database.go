package database

import (
	"context"
)

// Database is the account-scoped persistence contract. Every read or write
// of a tenant resource is parameterized by the owning account id and never
// returns rows from another account. Multi-row operations that must be
// atomic run inside Transaction.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction runs fn atomically. Store calls made with the context fn
	// receives join the same transaction; any error rolls everything back.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Accounts
	CreateAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, id string) (*Account, error)
	GetAccountByName(ctx context.Context, name string) (*Account, error)
	UpdateAccount(ctx context.Context, account *Account) error

	// Users
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsersByAccount(ctx context.Context, accountID string) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, accountID, id string) error

	// Invitations
	CreateInvitation(ctx context.Context, inv *Invitation) error
	GetInvitationByToken(ctx context.Context, token string) (*Invitation, error)
	ListInvitationsByAccount(ctx context.Context, accountID string) ([]*Invitation, error)
	// UpdateInvitationStatus transitions an invitation out of the from status
	// and reports whether this call performed the transition. Two concurrent
	// accepts of the same token see exactly one true.
	UpdateInvitationStatus(ctx context.Context, id string, from, to InvitationStatus) (bool, error)

	// Tags
	CreateTag(ctx context.Context, tag *Tag) error
	GetTag(ctx context.Context, accountID, id string) (*Tag, error)
	GetTagByName(ctx context.Context, accountID, name string) (*Tag, error)
	ListTagsByAccount(ctx context.Context, accountID string) ([]*Tag, error)
	UpdateTag(ctx context.Context, tag *Tag) error
	DeleteTag(ctx context.Context, accountID, id string) error

	// UTM links
	CreateUtmLink(ctx context.Context, link *UtmLink) error
	GetUtmLink(ctx context.Context, accountID, id string) (*UtmLink, error)
	GetUtmLinkByID(ctx context.Context, id string) (*UtmLink, error)
	ListUtmLinksByAccount(ctx context.Context, accountID string) ([]*UtmLink, error)
	ListUtmLinksByCampaign(ctx context.Context, accountID, campaignName string) ([]*UtmLink, error)
	UpdateUtmLink(ctx context.Context, link *UtmLink) error
	DeleteUtmLinksByCampaign(ctx context.Context, accountID, campaignName string) error
	SetUtmLinksArchived(ctx context.Context, accountID, ownerUserID, campaignName string, archived bool) error

	// Landing pages
	CreateLandingPage(ctx context.Context, page *CampaignLandingPage) error
	ListLandingPagesByAccount(ctx context.Context, accountID string) ([]*CampaignLandingPage, error)
	ListLandingPagesByCampaign(ctx context.Context, accountID, campaignName string) ([]*CampaignLandingPage, error)
	DeleteLandingPagesByCampaign(ctx context.Context, accountID, campaignName string) error
	SetLandingPagesArchived(ctx context.Context, accountID, ownerUserID, campaignName string, archived bool) error
}
