package models

import "time"

// Configuration key names stored in the app_config table.
const (
	ConfigAdminPasswordHash    = "admin_password_hash"
	ConfigBackupRecipientEmail = "backup_recipient_email"
)

// ConfigEntry is the row shape of the app_config key/value table.
type ConfigEntry struct {
	Key       string    `db:"config_key"`
	Value     string    `db:"config_value"`
	UpdatedAt time.Time `db:"updated_at"`
}
