package database

import (
	"github.com/campaignhub/campaignhub/internal/common/config"

	"gorm.io/driver/postgres"
)

// NewPostgres creates a PostgreSQL-backed Database
func NewPostgres(cfg *config.DatabaseConfig) (Database, error) {
	return newStore(postgres.Open(cfg.GetDSN()))
}
