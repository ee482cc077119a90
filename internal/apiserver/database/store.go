package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// store implements Database on top of gorm. All tenant queries are
// parameterized by account id; the dialect-specific constructors only differ
// in how they open the connection.
type store struct {
	db *gorm.DB
}

func newStore(dialector gorm.Dialector) (*store, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&Account{},
		&User{},
		&Invitation{},
		&Tag{},
		&UtmLink{},
		&CampaignLandingPage{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &store{db: gormDB}, nil
}

// Close closes the database connection
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn atomically, reusing a transaction already on the
// context so nested coordinator calls share one unit of work.
func (s *store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := TransactionFromContext(ctx); tx != nil {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTransaction(ctx, tx))
	})
}

// CreateAccount creates a new account
func (s *store) CreateAccount(ctx context.Context, account *Account) error {
	return getDBFromContext(ctx, s.db).Create(account).Error
}

// GetAccount retrieves an account by id
func (s *store) GetAccount(ctx context.Context, id string) (*Account, error) {
	var account Account
	err := getDBFromContext(ctx, s.db).
		Where("id = ?", id).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByName retrieves an account by name
func (s *store) GetAccountByName(ctx context.Context, name string) (*Account, error) {
	var account Account
	err := getDBFromContext(ctx, s.db).
		Where("name = ?", name).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccount updates an existing account
func (s *store) UpdateAccount(ctx context.Context, account *Account) error {
	return getDBFromContext(ctx, s.db).Save(account).Error
}

// CreateUser creates a new user
func (s *store) CreateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, s.db).Create(user).Error
}

// GetUser retrieves a user by id
func (s *store) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, s.db).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (s *store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, s.db).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsersByAccount retrieves all users of an account
func (s *store) ListUsersByAccount(ctx context.Context, accountID string) ([]*User, error) {
	var users []*User
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ?", accountID).
		Order("created_at asc").
		Find(&users).Error
	return users, err
}

// UpdateUser updates an existing user
func (s *store) UpdateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, s.db).Save(user).Error
}

// DeleteUser deletes a user within the given account
func (s *store) DeleteUser(ctx context.Context, accountID, id string) error {
	return getDBFromContext(ctx, s.db).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(&User{}).Error
}

// CreateInvitation creates a new invitation
func (s *store) CreateInvitation(ctx context.Context, inv *Invitation) error {
	return getDBFromContext(ctx, s.db).Create(inv).Error
}

// GetInvitationByToken retrieves an invitation by its opaque token
func (s *store) GetInvitationByToken(ctx context.Context, token string) (*Invitation, error) {
	var inv Invitation
	err := getDBFromContext(ctx, s.db).
		Where("token = ?", token).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListInvitationsByAccount retrieves all invitations of an account
func (s *store) ListInvitationsByAccount(ctx context.Context, accountID string) ([]*Invitation, error) {
	var invs []*Invitation
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ?", accountID).
		Order("created_at desc").
		Find(&invs).Error
	return invs, err
}

// UpdateInvitationStatus performs a guarded state transition. The WHERE
// clause on the current status makes the transition single-winner under
// concurrent calls: only one update ever matches a row.
func (s *store) UpdateInvitationStatus(ctx context.Context, id string, from, to InvitationStatus) (bool, error) {
	res := getDBFromContext(ctx, s.db).
		Model(&Invitation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// CreateTag creates a new tag
func (s *store) CreateTag(ctx context.Context, tag *Tag) error {
	return getDBFromContext(ctx, s.db).Create(tag).Error
}

// GetTag retrieves a tag by id within an account
func (s *store) GetTag(ctx context.Context, accountID, id string) (*Tag, error) {
	var tag Tag
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTagByName retrieves a tag by name within an account
func (s *store) GetTagByName(ctx context.Context, accountID, name string) (*Tag, error) {
	var tag Tag
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ? AND name = ?", accountID, name).
		First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListTagsByAccount retrieves all tags of an account
func (s *store) ListTagsByAccount(ctx context.Context, accountID string) ([]*Tag, error) {
	var tags []*Tag
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ?", accountID).
		Order("name asc").
		Find(&tags).Error
	return tags, err
}

// UpdateTag updates an existing tag
func (s *store) UpdateTag(ctx context.Context, tag *Tag) error {
	return getDBFromContext(ctx, s.db).Save(tag).Error
}

// DeleteTag deletes a tag within the given account
func (s *store) DeleteTag(ctx context.Context, accountID, id string) error {
	return getDBFromContext(ctx, s.db).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(&Tag{}).Error
}

// CreateUtmLink creates a new UTM link
func (s *store) CreateUtmLink(ctx context.Context, link *UtmLink) error {
	return getDBFromContext(ctx, s.db).Create(link).Error
}

// GetUtmLink retrieves a UTM link by id within an account
func (s *store) GetUtmLink(ctx context.Context, accountID, id string) (*UtmLink, error) {
	var link UtmLink
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetUtmLinkByID retrieves a UTM link by id regardless of account. Callers
// own the tenant check; a mismatch must surface as Forbidden, not NotFound.
func (s *store) GetUtmLinkByID(ctx context.Context, id string) (*UtmLink, error) {
	var link UtmLink
	err := getDBFromContext(ctx, s.db).Where("id = ?", id).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListUtmLinksByAccount retrieves all UTM links of an account
func (s *store) ListUtmLinksByAccount(ctx context.Context, accountID string) ([]*UtmLink, error) {
	var links []*UtmLink
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ?", accountID).
		Order("created_at asc").
		Find(&links).Error
	return links, err
}

// ListUtmLinksByCampaign retrieves all UTM links of a campaign
func (s *store) ListUtmLinksByCampaign(ctx context.Context, accountID, campaignName string) ([]*UtmLink, error) {
	var links []*UtmLink
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ? AND campaign_name = ?", accountID, campaignName).
		Order("created_at asc").
		Find(&links).Error
	return links, err
}

// UpdateUtmLink updates an existing UTM link
func (s *store) UpdateUtmLink(ctx context.Context, link *UtmLink) error {
	return getDBFromContext(ctx, s.db).Save(link).Error
}

// DeleteUtmLinksByCampaign deletes all UTM links of a campaign
func (s *store) DeleteUtmLinksByCampaign(ctx context.Context, accountID, campaignName string) error {
	return getDBFromContext(ctx, s.db).
		Where("account_id = ? AND campaign_name = ?", accountID, campaignName).
		Delete(&UtmLink{}).Error
}

// SetUtmLinksArchived sets the archived flag on every UTM link of a campaign.
// An empty ownerUserID means account-wide; otherwise only the owner's rows.
func (s *store) SetUtmLinksArchived(ctx context.Context, accountID, ownerUserID, campaignName string, archived bool) error {
	q := getDBFromContext(ctx, s.db).
		Model(&UtmLink{}).
		Where("account_id = ? AND campaign_name = ?", accountID, campaignName)
	if ownerUserID != "" {
		q = q.Where("user_id = ?", ownerUserID)
	}
	return q.Update("is_archived", archived).Error
}

// CreateLandingPage creates a new landing page
func (s *store) CreateLandingPage(ctx context.Context, page *CampaignLandingPage) error {
	return getDBFromContext(ctx, s.db).Create(page).Error
}

// ListLandingPagesByAccount retrieves all landing pages of an account
func (s *store) ListLandingPagesByAccount(ctx context.Context, accountID string) ([]*CampaignLandingPage, error) {
	var pages []*CampaignLandingPage
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ?", accountID).
		Order("created_at asc").
		Find(&pages).Error
	return pages, err
}

// ListLandingPagesByCampaign retrieves all landing pages of a campaign
func (s *store) ListLandingPagesByCampaign(ctx context.Context, accountID, campaignName string) ([]*CampaignLandingPage, error) {
	var pages []*CampaignLandingPage
	err := getDBFromContext(ctx, s.db).
		Where("account_id = ? AND campaign_name = ?", accountID, campaignName).
		Order("created_at asc").
		Find(&pages).Error
	return pages, err
}

// DeleteLandingPagesByCampaign deletes all landing pages of a campaign
func (s *store) DeleteLandingPagesByCampaign(ctx context.Context, accountID, campaignName string) error {
	return getDBFromContext(ctx, s.db).
		Where("account_id = ? AND campaign_name = ?", accountID, campaignName).
		Delete(&CampaignLandingPage{}).Error
}

// SetLandingPagesArchived sets the archived flag on every landing page of a
// campaign, optionally restricted to one owner.
func (s *store) SetLandingPagesArchived(ctx context.Context, accountID, ownerUserID, campaignName string, archived bool) error {
	q := getDBFromContext(ctx, s.db).
		Model(&CampaignLandingPage{}).
		Where("account_id = ? AND campaign_name = ?", accountID, campaignName)
	if ownerUserID != "" {
		q = q.Where("user_id = ?", ownerUserID)
	}
	return q.Update("is_archived", archived).Error
}
