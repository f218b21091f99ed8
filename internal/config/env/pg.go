package env

import (
	"errors"
	"fmt"
	"mining_backend/internal/config"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pgDSNEnvName = "PG_DSN"

type pgConfig struct {
	dsn string
}

// NewPGConfig DSN проверяется сразу, чтобы опечатка в .env не всплыла только при первом запросе
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(pgDSNEnvName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	if _, err := pgxpool.ParseConfig(dsn); err != nil {
		return nil, fmt.Errorf("invalid pg dsn: %w", err)
	}

	return &pgConfig{dsn: dsn}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
