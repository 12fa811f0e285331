package postgres

import (
	"fmt"

	"github.com/prajwalpc099d/ProjectVault/config"
)

// DSN builds a Postgres connection string from config.
func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}
