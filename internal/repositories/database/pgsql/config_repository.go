package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
)

type PgxConfigRepository struct {
	db *pgxpool.Pool
}

func newPgxConfigRepository(db *pgxpool.Pool) portsrepo.ConfigRepositoryFacade {
	return &PgxConfigRepository{db: db}
}

var _ portsrepo.ConfigRepositoryFacade = (*PgxConfigRepository)(nil)

func (r *PgxConfigRepository) GetConfigValue(ctx context.Context, key string) (string, error) {
	query := `SELECT config_value FROM app_config WHERE config_key = $1;`
	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to read config key %s: %w", key, err)
	}
	return value, nil
}

func (r *PgxConfigRepository) SetConfigValue(ctx context.Context, key string, value string) error {
	query := `
        INSERT INTO app_config (config_key, config_value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (config_key) DO UPDATE SET
            config_value = EXCLUDED.config_value,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("failed to write config key %s: %w", key, err)
	}
	return nil
}
