package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Slides.MaxTitleLength <= 0 {
		return fmt.Errorf("slides.max_title_length must be > 0 (got %d)", c.Slides.MaxTitleLength)
	}

	if c.Slides.MaxOverlaysPerSet <= 0 {
		return fmt.Errorf("slides.max_overlays_per_set must be > 0 (got %d)", c.Slides.MaxOverlaysPerSet)
	}

	return nil
}
