package database

import (
	"github.com/campaignhub/campaignhub/internal/common/config"

	"gorm.io/driver/mysql"
)

// NewMySQL creates a MySQL-backed Database
func NewMySQL(cfg *config.DatabaseConfig) (Database, error) {
	return newStore(mysql.Open(cfg.GetDSN()))
}
