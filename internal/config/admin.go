package config

import "fmt"

// AdminConfig holds administrator authorization configuration.
//
// Admin mutations are authorized server-side: every request under /admin
// must carry the token in the X-Admin-Token header. The token is never
// rendered to clients.
type AdminConfig struct {
	// Token is the static administrative credential.
	Token string
}

// LoadAdminConfigFromEnv loads admin configuration from environment variables.
func LoadAdminConfigFromEnv() AdminConfig {
	return AdminConfig{
		Token: GetEnv("ADMIN_TOKEN", ""),
	}
}

// Validate validates admin configuration.
func (c AdminConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("ADMIN_TOKEN must be set")
	}
	if len(c.Token) < 16 {
		return fmt.Errorf("ADMIN_TOKEN must be at least 16 characters")
	}
	return nil
}
