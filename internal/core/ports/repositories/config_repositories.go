package repositories

import "context"

// ConfigRepositoryFacade provides access to the app_config key/value store
// (admin credential hash, backup recipient address).
type ConfigRepositoryFacade interface {
	// GetConfigValue retrieves the value for a configuration key.
	GetConfigValue(ctx context.Context, key string) (string, error)

	// SetConfigValue upserts the value for a configuration key.
	SetConfigValue(ctx context.Context, key string, value string) error
}
