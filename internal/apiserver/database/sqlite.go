package database

import (
	"github.com/campaignhub/campaignhub/internal/common/config"

	"gorm.io/driver/sqlite"
)

// NewSQLite creates a SQLite-backed Database
func NewSQLite(cfg *config.DatabaseConfig) (Database, error) {
	return newStore(sqlite.Open(cfg.GetDSN()))
}
