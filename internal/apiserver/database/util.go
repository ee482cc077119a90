package database

import (
	"context"
	"errors"
	"time"

	"github.com/campaignhub/campaignhub/internal/authz"
	"github.com/campaignhub/campaignhub/internal/common/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitSuperAdmin seeds the bootstrap account and its first SuperAdmin user
// if they don't exist yet. Signup and invitation acceptance create every
// other user.
func InitSuperAdmin(db Database, cfg *config.SuperAdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	ctx := context.Background()

	if _, err := db.GetUserByEmail(ctx, cfg.Email); err == nil {
		// Bootstrap user already exists
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	accountName := cfg.AccountName
	if accountName == "" {
		accountName = "default"
	}

	return db.Transaction(ctx, func(ctx context.Context) error {
		now := time.Now()
		account := &Account{
			ID:        uuid.NewString(),
			Name:      accountName,
			Status:    AccountActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.CreateAccount(ctx, account); err != nil {
			return err
		}

		user := &User{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Email:     cfg.Email,
			Password:  string(hash),
			Role:      authz.RoleSuperAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return db.CreateUser(ctx, user)
	})
}
