package consistency

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campaignhub/campaignhub/internal/apiserver/database"
	"github.com/campaignhub/campaignhub/internal/common/cnst"
	"github.com/campaignhub/campaignhub/internal/i18n"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxTagNameLength = 100

// Coordinator owns the multi-row cascades that keep denormalized tenant data
// consistent. UtmLink rows carry tag names by value, and a campaign's
// archived state lives on every link and landing page row, so renaming a
// tag or archiving a campaign touches several collections. Every operation
// here runs as one store transaction: it either applies completely or not
// at all, never partially.
type Coordinator struct {
	db     database.Database
	logger *zap.Logger
}

func NewCoordinator(db database.Database, logger *zap.Logger) *Coordinator {
	return &Coordinator{db: db, logger: logger}
}

func validateTagName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", i18n.ErrorTagNameRequired
	}
	if len(name) > maxTagNameLength {
		return "", i18n.ErrorTagNameTooLong.WithParam("Max", maxTagNameLength)
	}
	return name, nil
}

// CreateTag creates a tag after validating its name is non-empty, within
// length, and unused in the account.
func (c *Coordinator) CreateTag(ctx context.Context, accountID, userID, name string) (*database.Tag, error) {
	name, err := validateTagName(name)
	if err != nil {
		return nil, err
	}

	var tag *database.Tag
	err = c.db.Transaction(ctx, func(ctx context.Context) error {
		if _, err := c.db.GetTagByName(ctx, accountID, name); err == nil {
			return i18n.ErrorTagNameExists.WithParam("Name", name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		tag = &database.Tag{
			ID:        uuid.NewString(),
			AccountID: accountID,
			UserID:    userID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return c.db.CreateTag(ctx, tag)
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// RenameTag renames a tag and rewrites every link in the account that
// references the old name by value. Both writes happen in one transaction
// so a failure leaves the old name everywhere.
func (c *Coordinator) RenameTag(ctx context.Context, accountID, tagID, newName string) (*database.Tag, error) {
	newName, err := validateTagName(newName)
	if err != nil {
		return nil, err
	}

	var tag *database.Tag
	err = c.db.Transaction(ctx, func(ctx context.Context) error {
		var err error
		tag, err = c.db.GetTag(ctx, accountID, tagID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return i18n.ErrorTagNotFound
			}
			return err
		}
		oldName := tag.Name
		if newName == oldName {
			return nil
		}

		if other, err := c.db.GetTagByName(ctx, accountID, newName); err == nil && other.ID != tag.ID {
			return i18n.ErrorTagNameExists.WithParam("Name", newName)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		tag.Name = newName
		tag.UpdatedAt = time.Now()
		if err := c.db.UpdateTag(ctx, tag); err != nil {
			return err
		}

		if err := c.rewriteLinkTags(ctx, accountID, oldName, newName); err != nil {
			return err
		}

		c.logger.Info("tag renamed",
			zap.String("account_id", accountID),
			zap.String("tag_id", tagID),
			zap.String("old_name", oldName),
			zap.String("new_name", newName))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes a tag and strips its name from every link in the
// account, atomically.
func (c *Coordinator) DeleteTag(ctx context.Context, accountID, tagID string) error {
	return c.db.Transaction(ctx, func(ctx context.Context) error {
		tag, err := c.db.GetTag(ctx, accountID, tagID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return i18n.ErrorTagNotFound
			}
			return err
		}

		if err := c.db.DeleteTag(ctx, accountID, tagID); err != nil {
			return err
		}
		if err := c.rewriteLinkTags(ctx, accountID, tag.Name, ""); err != nil {
			return err
		}

		c.logger.Info("tag deleted",
			zap.String("account_id", accountID),
			zap.String("tag_id", tagID),
			zap.String("name", tag.Name))
		return nil
	})
}

// rewriteLinkTags replaces oldName with newName in every link of the
// account; an empty newName removes the entry instead. Entries are
// deduplicated so a link carrying both names does not end up with two
// copies of the new one.
func (c *Coordinator) rewriteLinkTags(ctx context.Context, accountID, oldName, newName string) error {
	if database.TransactionFromContext(ctx) == nil {
		return cnst.ErrTransactionRequired
	}
	links, err := c.db.ListUtmLinksByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	for _, link := range links {
		changed := false
		seen := make(map[string]struct{}, len(link.Tags))
		rewritten := link.Tags[:0]
		for _, t := range link.Tags {
			if t == oldName {
				changed = true
				t = newName
			}
			if t == "" {
				continue
			}
			if _, dup := seen[t]; dup {
				changed = true
				continue
			}
			seen[t] = struct{}{}
			rewritten = append(rewritten, t)
		}
		if !changed {
			continue
		}
		link.Tags = rewritten
		link.UpdatedAt = time.Now()
		if err := c.db.UpdateUtmLink(ctx, link); err != nil {
			return err
		}
	}
	return nil
}

// SetCampaignArchived sets the archived flag on every link and landing page
// of the campaign in one transaction. ownerUserID narrows the cascade to
// rows created by that user; pass an empty string for the account-wide
// variant used by privileged callers. A campaign's rows never end up mixed.
func (c *Coordinator) SetCampaignArchived(ctx context.Context, accountID, ownerUserID, campaignName string, archived bool) error {
	campaignName = strings.TrimSpace(campaignName)
	if campaignName == "" {
		return i18n.ErrorCampaignNameRequired
	}

	err := c.db.Transaction(ctx, func(ctx context.Context) error {
		if err := c.db.SetUtmLinksArchived(ctx, accountID, ownerUserID, campaignName, archived); err != nil {
			return err
		}
		return c.db.SetLandingPagesArchived(ctx, accountID, ownerUserID, campaignName, archived)
	})
	if err != nil {
		return err
	}

	c.logger.Info("campaign archive state changed",
		zap.String("account_id", accountID),
		zap.String("campaign", campaignName),
		zap.Bool("archived", archived))
	return nil
}

// DeleteCampaignLinks removes every link and landing page of the campaign
// in one transaction.
func (c *Coordinator) DeleteCampaignLinks(ctx context.Context, accountID, campaignName string) error {
	campaignName = strings.TrimSpace(campaignName)
	if campaignName == "" {
		return i18n.ErrorCampaignNameRequired
	}

	return c.db.Transaction(ctx, func(ctx context.Context) error {
		if err := c.db.DeleteUtmLinksByCampaign(ctx, accountID, campaignName); err != nil {
			return err
		}
		return c.db.DeleteLandingPagesByCampaign(ctx, accountID, campaignName)
	})
}

// CreateLink stores a new UTM link after checking that every tag it carries
// names an existing Tag of the account. Links never introduce tag strings of
// their own; the Tag rows are the source of truth the cascades stand on.
func (c *Coordinator) CreateLink(ctx context.Context, link *database.UtmLink) error {
	return c.db.Transaction(ctx, func(ctx context.Context) error {
		if err := c.checkTagRefs(ctx, link.AccountID, link.Tags); err != nil {
			return err
		}
		return c.db.CreateUtmLink(ctx, link)
	})
}

func (c *Coordinator) checkTagRefs(ctx context.Context, accountID string, tags []string) error {
	for _, name := range tags {
		if _, err := c.db.GetTagByName(ctx, accountID, name); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return i18n.ErrorUnknownTag.WithParam("Name", name)
			}
			return err
		}
	}
	return nil
}

// ReplaceCampaignLinks swaps the campaign's links and landing pages for the
// given set inside one transaction, so readers never observe the campaign
// half-emptied during an edit-save.
func (c *Coordinator) ReplaceCampaignLinks(ctx context.Context, accountID, userID, campaignName string, links []*database.UtmLink, pages []*database.CampaignLandingPage) error {
	campaignName = strings.TrimSpace(campaignName)
	if campaignName == "" {
		return i18n.ErrorCampaignNameRequired
	}

	return c.db.Transaction(ctx, func(ctx context.Context) error {
		for _, link := range links {
			if err := c.checkTagRefs(ctx, accountID, link.Tags); err != nil {
				return err
			}
		}
		if err := c.db.DeleteUtmLinksByCampaign(ctx, accountID, campaignName); err != nil {
			return err
		}
		if err := c.db.DeleteLandingPagesByCampaign(ctx, accountID, campaignName); err != nil {
			return err
		}

		now := time.Now()
		for _, link := range links {
			if link.ID == "" {
				link.ID = uuid.NewString()
			}
			link.AccountID = accountID
			link.UserID = userID
			link.CampaignName = campaignName
			link.CreatedAt = now
			link.UpdatedAt = now
			if err := c.db.CreateUtmLink(ctx, link); err != nil {
				return err
			}
		}
		for _, page := range pages {
			if page.ID == "" {
				page.ID = uuid.NewString()
			}
			page.AccountID = accountID
			page.UserID = userID
			page.CampaignName = campaignName
			page.CreatedAt = now
			page.UpdatedAt = now
			if err := c.db.CreateLandingPage(ctx, page); err != nil {
				return err
			}
		}
		return nil
	})
}
