package database

import (
	"fmt"

	"github.com/campaignhub/campaignhub/internal/common/cnst"
	"github.com/campaignhub/campaignhub/internal/common/config"
)

// NewDatabase creates a Database based on the configured type
func NewDatabase(cfg *config.DatabaseConfig) (Database, error) {
	switch cfg.Type {
	case "postgres":
		return NewPostgres(cfg)
	case "mysql":
		return NewMySQL(cfg)
	case "sqlite":
		return NewSQLite(cfg)
	default:
		return nil, fmt.Errorf("%w: %s", cnst.ErrUnsupportedDatabaseType, cfg.Type)
	}
}
